package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/model"
)

func newStore() *Store {
	return New(&identity.Sequence{Prefix: "id"})
}

func seedCatalog(s *Store) (model.CourseComponent, model.CourseComponent, model.Instructor) {
	c1 := s.AddComponent(model.CourseComponent{Program: "Matemática", Semester: "1", Name: "Cálculo I"})
	c2 := s.AddComponent(model.CourseComponent{Program: "Física", Semester: "3", Name: "Mecânica"})
	d := s.AddInstructor(model.Instructor{Name: "Ana Silva"})
	return c1, c2, d
}

func TestAddComponentGeneratesID(t *testing.T) {
	s := newStore()
	c := s.AddComponent(model.CourseComponent{Program: "Matemática", Name: "Cálculo I"})

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, model.RequirementMandatory, c.Requirement)
	assert.Len(t, s.Components(), 1)
}

func TestUpdateComponentPartialMerge(t *testing.T) {
	s := newStore()
	c := s.AddComponent(model.CourseComponent{Program: "Matemática", Semester: "1", Name: "Cálculo I", WeeklyHours: 60})

	name := "Cálculo II"
	got, err := s.UpdateComponent(c.ID, model.ComponentPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Cálculo II", got.Name)
	assert.Equal(t, "Matemática", got.Program)
	assert.Equal(t, 60, got.WeeklyHours)
	assert.Equal(t, c.ID, got.ID)
}

func TestUpdateMissingComponent(t *testing.T) {
	s := newStore()
	name := "X"
	_, err := s.UpdateComponent("nope", model.ComponentPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	s := newStore()
	seedCatalog(s)

	s.RemoveComponent("nope")
	s.RemoveInstructor("nope")
	s.RemoveProgram("nope")
	s.DeleteAssignment("nope")

	assert.Len(t, s.Components(), 2)
	assert.Len(t, s.Instructors(), 1)
}

func TestCreateAssignmentDerivesDailyHours(t *testing.T) {
	s := newStore()
	c1, _, d := seedCatalog(s)

	a, err := s.CreateAssignment(model.Assignment{
		ComponentID:  c1.ID,
		InstructorID: d.ID,
		Weekdays:     []model.Weekday{model.Monday},
		StartTime:    "08:00",
		EndTime:      "10:30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.InDelta(t, 2.5, a.DailyHours, 1e-9)
}

func TestCreateAssignmentRejectsInvertedWindow(t *testing.T) {
	s := newStore()
	c1, _, d := seedCatalog(s)

	_, err := s.CreateAssignment(model.Assignment{
		ComponentID:  c1.ID,
		InstructorID: d.ID,
		Weekdays:     []model.Weekday{model.Monday},
		StartTime:    "10:00",
		EndTime:      "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestCreateAssignmentRejectsBadWeekdays(t *testing.T) {
	s := newStore()
	c1, _, d := seedCatalog(s)

	_, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		StartTime: "08:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrNoWeekdays)

	_, err = s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{"Domingo"},
		StartTime: "08:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestAssignmentMutationsRecomputeConflicts(t *testing.T) {
	s := newStore()
	c1, c2, d := seedCatalog(s)

	a1, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Monday, model.Wednesday},
		StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	assert.Empty(t, s.Conflicts())

	a2, err := s.CreateAssignment(model.Assignment{
		ComponentID: c2.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Wednesday, model.Friday},
		StartTime: "09:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	conflicts := s.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, model.ConflictInstructor, conflicts[0].Kind)
	assert.ElementsMatch(t, []string{a1.ID, a2.ID}, conflicts[0].AssignmentIDs)

	// Moving the second window off Wednesday clears the conflict.
	_, err = s.UpdateAssignment(a2.ID, model.AssignmentPatch{
		Weekdays: []model.Weekday{model.Friday},
	})
	require.NoError(t, err)
	assert.Empty(t, s.Conflicts())

	// Moving it back and deleting the first clears it again.
	_, err = s.UpdateAssignment(a2.ID, model.AssignmentPatch{
		Weekdays: []model.Weekday{model.Wednesday},
	})
	require.NoError(t, err)
	require.Len(t, s.Conflicts(), 1)

	s.DeleteAssignment(a1.ID)
	assert.Empty(t, s.Conflicts())
}

func TestUpdateAssignmentHalfWindowKeepsSpan(t *testing.T) {
	s := newStore()
	c1, _, d := seedCatalog(s)

	a, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Monday},
		StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	start := "07:00"
	got, err := s.UpdateAssignment(a.ID, model.AssignmentPatch{StartTime: &start})
	require.NoError(t, err)

	assert.Equal(t, "07:00", got.StartTime)
	assert.InDelta(t, 2.0, got.DailyHours, 1e-9, "span only recomputes when both times change")

	end := "11:00"
	got, err = s.UpdateAssignment(a.ID, model.AssignmentPatch{StartTime: &start, EndTime: &end})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got.DailyHours, 1e-9)
}

func TestReplaceImportedRetainsAssignments(t *testing.T) {
	s := newStore()
	c1, _, d := seedCatalog(s)

	a, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Monday},
		StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	s.ReplaceImported(
		[]model.CourseComponent{{ID: "new-c", Program: "Química", Semester: "1", Name: "Orgânica"}},
		[]model.Instructor{{ID: "new-d", Name: "Bruno Costa"}},
		[]model.Program{{ID: "new-p", Name: "Química", Shift: model.ShiftDay}},
	)

	// The assignment now dangles; it is retained by contract.
	assignments := s.Assignments()
	require.Len(t, assignments, 1)
	assert.Equal(t, a.ID, assignments[0].ID)
	assert.Len(t, s.Components(), 1)
	assert.Equal(t, "Orgânica", s.Components()[0].Name)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newStore()
	c1, c2, d := seedCatalog(s)

	_, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Wednesday},
		StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	_, err = s.CreateAssignment(model.Assignment{
		ComponentID: c2.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Wednesday},
		StartTime: "09:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	snap := s.Snapshot()

	restored := newStore()
	restored.Restore(snap)

	assert.Equal(t, s.Components(), restored.Components())
	assert.Equal(t, s.Assignments(), restored.Assignments())
	// Conflicts are not persisted but must come back after restore.
	require.Len(t, restored.Conflicts(), 1)
	assert.Equal(t, model.ConflictInstructor, restored.Conflicts()[0].Kind)
}

func TestClear(t *testing.T) {
	s := newStore()
	c1, _, d := seedCatalog(s)
	_, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Monday},
		StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	s.Clear()

	assert.Empty(t, s.Components())
	assert.Empty(t, s.Instructors())
	assert.Empty(t, s.Programs())
	assert.Empty(t, s.Assignments())
	assert.Empty(t, s.Conflicts())
}

func TestRecheckIdempotent(t *testing.T) {
	s := newStore()
	c1, c2, d := seedCatalog(s)
	_, err := s.CreateAssignment(model.Assignment{
		ComponentID: c1.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Monday},
		StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	_, err = s.CreateAssignment(model.Assignment{
		ComponentID: c2.ID, InstructorID: d.ID,
		Weekdays:  []model.Weekday{model.Monday},
		StartTime: "09:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	first := s.Recheck()
	second := s.Recheck()

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].Kind, second[0].Kind)
	assert.Equal(t, first[0].AssignmentIDs, second[0].AssignmentIDs)
}
