package importer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/model"
)

// nightKeyword marks a program name as night-shift when present
// (compared accent- and case-insensitively).
const nightKeyword = "NOTURNO"

// Result holds the materialized entity collections plus import counts
// for the reporting layer.
type Result struct {
	Components  []model.CourseComponent
	Instructors []model.Instructor
	Programs    []model.Program
	Stats       Stats
}

// Stats summarizes an import batch.
type Stats struct {
	TotalRows   int      `json:"total_rows"`
	Processed   int      `json:"processed"`
	Invalid     int      `json:"invalid"`
	Programs    []string `json:"programs"`
	Instructors []string `json:"instructors"`
	Semesters   []string `json:"semesters"`
}

// Materialize converts decoded rows into deduplicated entity
// collections. It never fails: invalid rows (missing program or
// component name) are dropped and counted, unparseable hour loads
// coerce to zero.
func Materialize(rows []RawRow, ids identity.Generator) Result {
	res := Result{
		Components:  []model.CourseComponent{},
		Instructors: []model.Instructor{},
		Programs:    []model.Program{},
	}
	res.Stats.TotalRows = len(rows)

	seenInstructor := make(map[string]bool)
	seenProgram := make(map[string]bool)
	seenSemester := make(map[string]bool)

	for _, raw := range rows {
		bag := canonicalize(raw)

		program := bag.resolve(fieldProgram, "")
		component := bag.resolve(fieldComponent, "")
		if program == "" || component == "" {
			res.Stats.Invalid++
			continue
		}

		semester := bag.resolve(fieldSemester, "")
		instructors := splitInstructors(bag.resolve(fieldInstructors, ""))

		res.Components = append(res.Components, model.CourseComponent{
			ID:          ids.NewID(),
			Program:     program,
			Semester:    semester,
			Name:        component,
			WeeklyHours: parseHours(bag.resolve(fieldHours, "0")),
			Requirement: ClassifyRequirement(bag.resolve(fieldRequirement, "")),
			Code:        bag.resolve(fieldCode, ""),
			Instructors: instructors,
		})
		res.Stats.Processed++

		// Instructor dedup is name-exact, not accent-insensitive:
		// "André" and "Andre" stay two people.
		for _, name := range instructors {
			if !seenInstructor[name] {
				seenInstructor[name] = true
				res.Instructors = append(res.Instructors, model.Instructor{
					ID:   ids.NewID(),
					Name: name,
				})
			}
		}

		if !seenProgram[program] {
			seenProgram[program] = true
			res.Programs = append(res.Programs, model.Program{
				ID:    ids.NewID(),
				Name:  program,
				Shift: classifyShift(program),
			})
		}

		if semester != "" && !seenSemester[semester] {
			seenSemester[semester] = true
			res.Stats.Semesters = append(res.Stats.Semesters, semester)
		}
	}

	for _, p := range res.Programs {
		res.Stats.Programs = append(res.Stats.Programs, p.Name)
	}
	for _, d := range res.Instructors {
		res.Stats.Instructors = append(res.Stats.Instructors, d.Name)
	}
	sort.Strings(res.Stats.Semesters)

	return res
}

// ClassifyRequirement classifies a requirement-class value. The test is
// a substring match on the folded form, tolerant of spelling variance:
// anything containing "OPTAT" is elective, everything else (including
// empty) is mandatory.
func ClassifyRequirement(value string) model.RequirementClass {
	if strings.Contains(foldUpper(value), "OPTAT") {
		return model.RequirementElective
	}
	return model.RequirementMandatory
}

// classifyShift derives a program's shift from its name. Only the
// night keyword is recognized; everything else defaults to day.
func classifyShift(programName string) model.Shift {
	if strings.Contains(foldUpper(programName), nightKeyword) {
		return model.ShiftNight
	}
	return model.ShiftDay
}

// splitInstructors splits a comma-separated instructor list, trimming
// each piece and discarding empties.
func splitInstructors(value string) []string {
	out := []string{}
	for _, piece := range strings.Split(value, ",") {
		if name := strings.TrimSpace(piece); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// parseHours parses an hour load as the longest leading integer:
// "60h" -> 60, "abc" -> 0. Never fails.
func parseHours(value string) int {
	value = strings.TrimSpace(value)
	n := 0
	parsed := false
	for _, r := range value {
		if !unicode.IsDigit(r) {
			break
		}
		n = n*10 + int(r-'0')
		parsed = true
	}
	if !parsed {
		return 0
	}
	return n
}
