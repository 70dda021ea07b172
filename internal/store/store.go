// Package store owns the live scheduling collections: course
// components, instructors, programs and assignments, plus the derived
// conflict set. It is the single mutable aggregate of the system;
// every assignment mutation synchronously recomputes conflicts before
// returning, so no caller ever observes an assignment change without
// its matching conflict set.
package store

import (
	"errors"
	"sync"

	"github.com/gestac/gestac-backend/internal/conflict"
	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/interval"
	"github.com/gestac/gestac-backend/internal/model"
)

var (
	// ErrNotFound is returned by updates targeting a missing identity.
	// Deletes of missing identities are no-ops, not errors.
	ErrNotFound = errors.New("entity not found")
	// ErrInvalidTimeWindow rejects assignments with end <= start.
	ErrInvalidTimeWindow = errors.New("assignment end time must be after start time")
	// ErrInvalidWeekday rejects weekdays outside the six-day domain.
	ErrInvalidWeekday = errors.New("weekday outside the teaching week")
	// ErrNoWeekdays rejects assignments with an empty weekday set.
	ErrNoWeekdays = errors.New("assignment needs at least one weekday")
)

// Store is safe for concurrent use; a single mutex serializes every
// reader and writer so conflict recomputation never sees a half-applied
// mutation.
type Store struct {
	mu  sync.Mutex
	ids identity.Generator

	components  []model.CourseComponent
	instructors []model.Instructor
	programs    []model.Program
	assignments []model.Assignment
	conflicts   []model.Conflict
}

func New(ids identity.Generator) *Store {
	return &Store{
		ids:         ids,
		components:  []model.CourseComponent{},
		instructors: []model.Instructor{},
		programs:    []model.Program{},
		assignments: []model.Assignment{},
		conflicts:   []model.Conflict{},
	}
}

// ─── Bulk operations ───────────────────────────────────────────────────

// ReplaceImported swaps the three import-derived collections wholesale.
// Existing assignments are deliberately retained even when they now
// reference deleted components: references are weak by contract, and
// export/detection handle the dangling case. Conflicts are recomputed
// against the new catalog.
func (s *Store) ReplaceImported(components []model.CourseComponent, instructors []model.Instructor, programs []model.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.components = append([]model.CourseComponent{}, components...)
	s.instructors = append([]model.Instructor{}, instructors...)
	s.programs = append([]model.Program{}, programs...)
	s.recompute()
}

// Clear drops every collection, derived state included.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.components = []model.CourseComponent{}
	s.instructors = []model.Instructor{}
	s.programs = []model.Program{}
	s.assignments = []model.Assignment{}
	s.conflicts = []model.Conflict{}
}

// Snapshot copies the four live collections for persistence. Conflicts
// are excluded: they are derived and rebuilt by Restore.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.Snapshot{
		Components:  append([]model.CourseComponent{}, s.components...),
		Instructors: append([]model.Instructor{}, s.instructors...),
		Programs:    append([]model.Program{}, s.programs...),
		Assignments: append([]model.Assignment{}, s.assignments...),
	}
}

// Restore replaces all collections from a persisted snapshot and
// recomputes the conflict set.
func (s *Store) Restore(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.components = append([]model.CourseComponent{}, snap.Components...)
	s.instructors = append([]model.Instructor{}, snap.Instructors...)
	s.programs = append([]model.Program{}, snap.Programs...)
	s.assignments = append([]model.Assignment{}, snap.Assignments...)
	s.recompute()
}

// ─── Read access ───────────────────────────────────────────────────────

func (s *Store) Components() []model.CourseComponent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CourseComponent{}, s.components...)
}

func (s *Store) Instructors() []model.Instructor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Instructor{}, s.instructors...)
}

func (s *Store) Programs() []model.Program {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Program{}, s.programs...)
}

func (s *Store) Assignments() []model.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Assignment{}, s.assignments...)
}

func (s *Store) Conflicts() []model.Conflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Conflict{}, s.conflicts...)
}

// ─── Course components ─────────────────────────────────────────────────

func (s *Store) AddComponent(c model.CourseComponent) model.CourseComponent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = s.ids.NewID()
	}
	if c.Requirement == "" {
		c.Requirement = model.RequirementMandatory
	}
	if c.Instructors == nil {
		c.Instructors = []string{}
	}
	s.components = append(s.components, c)
	return c
}

func (s *Store) UpdateComponent(id string, patch model.ComponentPatch) (model.CourseComponent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.components {
		if s.components[i].ID != id {
			continue
		}
		c := &s.components[i]
		if patch.Program != nil {
			c.Program = *patch.Program
		}
		if patch.Semester != nil {
			c.Semester = *patch.Semester
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.WeeklyHours != nil {
			c.WeeklyHours = *patch.WeeklyHours
		}
		if patch.Requirement != nil {
			c.Requirement = *patch.Requirement
		}
		if patch.Code != nil {
			c.Code = *patch.Code
		}
		if patch.Instructors != nil {
			c.Instructors = patch.Instructors
		}
		// Component attributes feed the cohort-clash rule.
		s.recompute()
		return *c, nil
	}
	return model.CourseComponent{}, ErrNotFound
}

func (s *Store) RemoveComponent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = deleteByID(s.components, id, func(c model.CourseComponent) string { return c.ID })
	s.recompute()
}

// ─── Instructors ───────────────────────────────────────────────────────

func (s *Store) AddInstructor(d model.Instructor) model.Instructor {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = s.ids.NewID()
	}
	s.instructors = append(s.instructors, d)
	return d
}

func (s *Store) UpdateInstructor(id string, patch model.InstructorPatch) (model.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.instructors {
		if s.instructors[i].ID != id {
			continue
		}
		d := &s.instructors[i]
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.Email != nil {
			d.Email = *patch.Email
		}
		if patch.Specialty != nil {
			d.Specialty = *patch.Specialty
		}
		// Instructor names appear in conflict descriptions.
		s.recompute()
		return *d, nil
	}
	return model.Instructor{}, ErrNotFound
}

func (s *Store) RemoveInstructor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructors = deleteByID(s.instructors, id, func(d model.Instructor) string { return d.ID })
	s.recompute()
}

// ─── Programs ──────────────────────────────────────────────────────────

func (s *Store) AddProgram(p model.Program) model.Program {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.ids.NewID()
	}
	if p.Shift == "" {
		p.Shift = model.ShiftDay
	}
	s.programs = append(s.programs, p)
	return p
}

func (s *Store) UpdateProgram(id string, patch model.ProgramPatch) (model.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.programs {
		if s.programs[i].ID != id {
			continue
		}
		p := &s.programs[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Shift != nil {
			p.Shift = *patch.Shift
		}
		return *p, nil
	}
	return model.Program{}, ErrNotFound
}

func (s *Store) RemoveProgram(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.programs = deleteByID(s.programs, id, func(p model.Program) string { return p.ID })
}

// ─── Assignments ───────────────────────────────────────────────────────

// CreateAssignment validates the weekday set and time window, derives
// the daily-hour span and recomputes conflicts. Multiple assignments
// per course component are permitted here; enforcing one-per-component
// is a collaborator policy, not a store invariant.
func (s *Store) CreateAssignment(a model.Assignment) (model.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateWeekdays(a.Weekdays); err != nil {
		return model.Assignment{}, err
	}
	if err := validateWindow(a.StartTime, a.EndTime); err != nil {
		return model.Assignment{}, err
	}

	if a.ID == "" {
		a.ID = s.ids.NewID()
	}
	a.DailyHours = dailyHours(a.StartTime, a.EndTime)
	s.assignments = append(s.assignments, a)
	s.recompute()
	return a, nil
}

// UpdateAssignment applies a partial merge. The daily-hour span is
// recomputed only when start and end are supplied together; a
// half-supplied window keeps the previous span, per the store contract.
func (s *Store) UpdateAssignment(id string, patch model.AssignmentPatch) (model.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assignments {
		if s.assignments[i].ID != id {
			continue
		}
		a := &s.assignments[i]

		if patch.Weekdays != nil {
			if err := validateWeekdays(patch.Weekdays); err != nil {
				return model.Assignment{}, err
			}
		}
		if patch.StartTime != nil && patch.EndTime != nil {
			if err := validateWindow(*patch.StartTime, *patch.EndTime); err != nil {
				return model.Assignment{}, err
			}
		}

		if patch.ComponentID != nil {
			a.ComponentID = *patch.ComponentID
		}
		if patch.InstructorID != nil {
			a.InstructorID = *patch.InstructorID
		}
		if patch.Weekdays != nil {
			a.Weekdays = patch.Weekdays
		}
		if patch.StartTime != nil {
			a.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			a.EndTime = *patch.EndTime
		}
		if patch.StartTime != nil && patch.EndTime != nil {
			a.DailyHours = dailyHours(a.StartTime, a.EndTime)
		}

		s.recompute()
		return *a, nil
	}
	return model.Assignment{}, ErrNotFound
}

// DeleteAssignment removes by identity; a missing id is a no-op. The
// conflict set is recomputed either way.
func (s *Store) DeleteAssignment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = deleteByID(s.assignments, id, func(a model.Assignment) string { return a.ID })
	s.recompute()
}

// Recheck forces a detection pass without any mutation and returns the
// fresh conflict set.
func (s *Store) Recheck() []model.Conflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recompute()
	return append([]model.Conflict{}, s.conflicts...)
}

// ─── Internals ─────────────────────────────────────────────────────────

// recompute rebuilds the conflict set from scratch. Callers hold s.mu.
func (s *Store) recompute() {
	s.conflicts = conflict.Detect(s.assignments, s.components, s.instructors, s.ids)
}

func validateWeekdays(days []model.Weekday) error {
	if len(days) == 0 {
		return ErrNoWeekdays
	}
	for _, d := range days {
		if !d.IsValid() {
			return ErrInvalidWeekday
		}
	}
	return nil
}

func validateWindow(start, end string) error {
	if interval.ToMinutes(end) <= interval.ToMinutes(start) {
		return ErrInvalidTimeWindow
	}
	return nil
}

func dailyHours(start, end string) float64 {
	return float64(interval.ToMinutes(end)-interval.ToMinutes(start)) / 60
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
