// Package export renders the allocation table for external reporting,
// as CSV and as an XLSX workbook.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gestac/gestac-backend/internal/model"
)

// header is the fixed column order of the allocation table.
var header = []string{
	"Curso", "Semestre", "Componente", "CH", "Natureza", "Código",
	"Docente", "Dias da Semana", "Horário Início", "Horário Fim",
}

// AssignmentsCSV renders one line per assignment after the header.
// Component and instructor references are resolved leniently: a
// dangling reference yields empty columns, never an error.
func AssignmentsCSV(assignments []model.Assignment, components []model.CourseComponent, instructors []model.Instructor) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, row := range tableRows(assignments, components, instructors) {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// AssignmentsXLSX renders the same table into a single-sheet workbook.
func AssignmentsXLSX(assignments []model.Assignment, components []model.CourseComponent, instructors []model.Instructor) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range tableRows(assignments, components, instructors) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func tableRows(assignments []model.Assignment, components []model.CourseComponent, instructors []model.Instructor) [][]string {
	componentByID := make(map[string]model.CourseComponent, len(components))
	for _, c := range components {
		componentByID[c.ID] = c
	}
	instructorByID := make(map[string]model.Instructor, len(instructors))
	for _, d := range instructors {
		instructorByID[d.ID] = d
	}

	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		var program, semester, name, hours, requirement, code string
		if c, ok := componentByID[a.ComponentID]; ok {
			program, semester, name = c.Program, c.Semester, c.Name
			hours = strconv.Itoa(c.WeeklyHours)
			requirement = string(c.Requirement)
			code = c.Code
		}
		var instructor string
		if d, ok := instructorByID[a.InstructorID]; ok {
			instructor = d.Name
		}

		days := make([]string, len(a.Weekdays))
		for i, d := range a.Weekdays {
			days[i] = string(d)
		}

		rows = append(rows, []string{
			program, semester, name, hours, requirement, code,
			instructor, strings.Join(days, ","), a.StartTime, a.EndTime,
		})
	}
	return rows
}
