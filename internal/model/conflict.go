package model

// ConflictKind identifies which scheduling rule a conflict violates.
type ConflictKind string

const (
	// ConflictInstructor: the same instructor is booked into two
	// overlapping time windows.
	ConflictInstructor ConflictKind = "INSTRUCTOR"
	// ConflictMandatoryClass: two mandatory components of the same
	// program and semester overlap.
	ConflictMandatoryClass ConflictKind = "MANDATORY_CLASS"
	// ConflictElectiveClass: an elective overlaps a mandatory component
	// of the same program and semester.
	ConflictElectiveClass ConflictKind = "ELECTIVE_CLASS"
)

// Severity grades a conflict as a hard error or a warning.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Conflict is a detected scheduling violation between two assignments.
// Conflicts are derived state: the whole collection is rebuilt on every
// detection pass and is never patched incrementally.
type Conflict struct {
	ID            string       `json:"id"`
	Kind          ConflictKind `json:"kind"`
	Description   string       `json:"description"`
	AssignmentIDs []string     `json:"assignment_ids"`
	Severity      Severity     `json:"severity"`
}
