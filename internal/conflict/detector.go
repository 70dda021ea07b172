// Package conflict computes the derived conflict set from the current
// assignments. Detection is a pure total-replacement pass: callers
// throw away the previous collection and keep whatever Detect returns.
package conflict

import (
	"fmt"

	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/interval"
	"github.com/gestac/gestac-backend/internal/model"
)

// Detect enumerates every unordered pair of assignments once and
// applies two rules:
//
//   - instructor double-booking: same instructor, shared weekday,
//     overlapping time window -> INSTRUCTOR / ERROR
//   - cohort clash: components of the same program and semester, shared
//     weekday, overlapping time window -> MANDATORY_CLASS / ERROR when
//     both are mandatory, ELECTIVE_CLASS / WARNING when an elective
//     meets a mandatory.
//
// Component and instructor references that cannot be resolved are
// skipped for the rules that need them; a dangling assignment never
// fails the pass. The scan is O(n²) in assignment count, which is fine
// for a single institution's catalog.
func Detect(
	assignments []model.Assignment,
	components []model.CourseComponent,
	instructors []model.Instructor,
	ids identity.Generator,
) []model.Conflict {
	componentByID := make(map[string]model.CourseComponent, len(components))
	for _, c := range components {
		componentByID[c.ID] = c
	}
	instructorByID := make(map[string]model.Instructor, len(instructors))
	for _, d := range instructors {
		instructorByID[d.ID] = d
	}

	conflicts := []model.Conflict{}

	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			a, b := assignments[i], assignments[j]

			if !sharesWeekday(a.Weekdays, b.Weekdays) {
				continue
			}
			if !interval.WindowsOverlap(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				continue
			}

			if a.InstructorID == b.InstructorID {
				conflicts = append(conflicts, model.Conflict{
					ID:            ids.NewID(),
					Kind:          model.ConflictInstructor,
					Description:   instructorDescription(instructorByID[a.InstructorID]),
					AssignmentIDs: []string{a.ID, b.ID},
					Severity:      model.SeverityError,
				})
			}

			ca, okA := componentByID[a.ComponentID]
			cb, okB := componentByID[b.ComponentID]
			if !okA || !okB {
				continue
			}
			if ca.Program != cb.Program || ca.Semester != cb.Semester {
				continue
			}

			switch {
			case ca.Requirement == model.RequirementMandatory && cb.Requirement == model.RequirementMandatory:
				conflicts = append(conflicts, model.Conflict{
					ID:   ids.NewID(),
					Kind: model.ConflictMandatoryClass,
					Description: fmt.Sprintf(
						"Conflito de turma: duas disciplinas obrigatórias de %s (%sº semestre) no mesmo horário",
						ca.Program, ca.Semester),
					AssignmentIDs: []string{a.ID, b.ID},
					Severity:      model.SeverityError,
				})
			case ca.Requirement != cb.Requirement:
				conflicts = append(conflicts, model.Conflict{
					ID:   ids.NewID(),
					Kind: model.ConflictElectiveClass,
					Description: fmt.Sprintf(
						"Conflito de turma: disciplina optativa no horário de uma obrigatória de %s (%sº semestre)",
						ca.Program, ca.Semester),
					AssignmentIDs: []string{a.ID, b.ID},
					Severity:      model.SeverityWarning,
				})
			}
		}
	}

	return conflicts
}

func instructorDescription(d model.Instructor) string {
	name := d.Name
	if name == "" {
		name = "docente não identificado"
	}
	return fmt.Sprintf("Conflito de docente: %s está alocado em horários conflitantes", name)
}

func sharesWeekday(a, b []model.Weekday) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
