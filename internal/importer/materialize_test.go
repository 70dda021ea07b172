package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/model"
)

func newIDs() *identity.Sequence {
	return &identity.Sequence{Prefix: "id"}
}

func TestMaterializeDropsInvalidRows(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "", "COMPONENTECURRICULAR": "X"},
		{"CURSO": "Y", "COMPONENTECURRICULAR": "Z"},
	}

	res := Materialize(rows, newIDs())

	require.Len(t, res.Components, 1)
	assert.Equal(t, "Z", res.Components[0].Name)
	assert.Equal(t, 2, res.Stats.TotalRows)
	assert.Equal(t, 1, res.Stats.Processed)
	assert.Equal(t, 1, res.Stats.Invalid)
}

func TestMaterializeInstructorDedup(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "Matemática", "COMPONENTECURRICULAR": "Cálculo I", "DOCENTES": "Ana Silva"},
		{"CURSO": "Matemática", "COMPONENTECURRICULAR": "Cálculo II", "DOCENTES": "Ana Silva, Bruno Costa"},
	}

	res := Materialize(rows, newIDs())

	require.Len(t, res.Instructors, 2)
	assert.Equal(t, "Ana Silva", res.Instructors[0].Name)
	assert.Equal(t, "Bruno Costa", res.Instructors[1].Name)
}

func TestMaterializeInstructorDedupIsNameExact(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "A", "COMPONENTECURRICULAR": "X", "DOCENTES": "André"},
		{"CURSO": "A", "COMPONENTECURRICULAR": "Y", "DOCENTES": "Andre"},
	}

	res := Materialize(rows, newIDs())
	assert.Len(t, res.Instructors, 2)
}

func TestMaterializeProgramShift(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "Licenciatura (Noturno)", "COMPONENTECURRICULAR": "A"},
		{"CURSO": "Licenciatura (Diurno)", "COMPONENTECURRICULAR": "B"},
		{"CURSO": "Licenciatura (Noturno)", "COMPONENTECURRICULAR": "C"},
	}

	res := Materialize(rows, newIDs())

	require.Len(t, res.Programs, 2)
	assert.Equal(t, model.ShiftNight, res.Programs[0].Shift)
	assert.Equal(t, model.ShiftDay, res.Programs[1].Shift)
}

func TestMaterializeHourLoad(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "A", "COMPONENTECURRICULAR": "W", "CH": "60"},
		{"CURSO": "A", "COMPONENTECURRICULAR": "X", "CH": "60h"},
		{"CURSO": "A", "COMPONENTECURRICULAR": "Y", "CH": "abc"},
		{"CURSO": "A", "COMPONENTECURRICULAR": "Z"},
	}

	res := Materialize(rows, newIDs())

	require.Len(t, res.Components, 4)
	assert.Equal(t, 60, res.Components[0].WeeklyHours)
	assert.Equal(t, 60, res.Components[1].WeeklyHours)
	assert.Equal(t, 0, res.Components[2].WeeklyHours)
	assert.Equal(t, 0, res.Components[3].WeeklyHours)
}

func TestClassifyRequirement(t *testing.T) {
	assert.Equal(t, model.RequirementElective, ClassifyRequirement("optativa"))
	assert.Equal(t, model.RequirementElective, ClassifyRequirement("OPTATIVA"))
	assert.Equal(t, model.RequirementElective, ClassifyRequirement("Optatíva"))
	assert.Equal(t, model.RequirementMandatory, ClassifyRequirement("Obrigatória"))
	assert.Equal(t, model.RequirementMandatory, ClassifyRequirement("OBRIGATORIA"))
	assert.Equal(t, model.RequirementMandatory, ClassifyRequirement(""))
}

func TestMaterializeUniqueIDs(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "A", "COMPONENTECURRICULAR": "X", "DOCENTES": "P, Q"},
		{"CURSO": "B", "COMPONENTECURRICULAR": "Y", "DOCENTES": "R"},
	}

	res := Materialize(rows, &identity.UUID{})

	seen := map[string]bool{}
	for _, c := range res.Components {
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
	for _, d := range res.Instructors {
		assert.False(t, seen[d.ID])
		seen[d.ID] = true
	}
	for _, p := range res.Programs {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestMaterializeStats(t *testing.T) {
	rows := []RawRow{
		{"CURSO": "Matemática", "SEMESTRE": "2", "COMPONENTECURRICULAR": "Cálculo II", "DOCENTES": "Ana"},
		{"CURSO": "Física", "SEMESTRE": "1", "COMPONENTECURRICULAR": "Mecânica", "DOCENTES": "Bruno"},
	}

	res := Materialize(rows, newIDs())

	assert.Equal(t, []string{"Matemática", "Física"}, res.Stats.Programs)
	assert.Equal(t, []string{"Ana", "Bruno"}, res.Stats.Instructors)
	assert.Equal(t, []string{"1", "2"}, res.Stats.Semesters)
}
