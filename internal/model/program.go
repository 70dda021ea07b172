package model

// Shift classifies when a program's classes run.
type Shift string

const (
	ShiftDay            Shift = "DAY"
	ShiftAfternoon      Shift = "AFTERNOON"
	ShiftNight          Shift = "NIGHT"
	ShiftAfternoonNight Shift = "AFTERNOON_NIGHT"
)

// Program is an academic track grouping course components by semester.
// Name is unique within the store.
type Program struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Shift Shift  `json:"shift"`
}

// CreateProgramRequest is the payload for creating a program.
type CreateProgramRequest struct {
	Name  string `json:"name" binding:"required"`
	Shift Shift  `json:"shift" binding:"required,oneof=DAY AFTERNOON NIGHT AFTERNOON_NIGHT"`
}

// ProgramPatch is a partial update: only non-nil fields are applied.
type ProgramPatch struct {
	Name  *string `json:"name"`
	Shift *Shift  `json:"shift" binding:"omitempty,oneof=DAY AFTERNOON NIGHT AFTERNOON_NIGHT"`
}
