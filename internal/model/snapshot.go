package model

// Snapshot is the persisted shape of the four live collections.
// Conflicts are intentionally absent: they are fully derived and are
// recomputed when a snapshot is restored.
type Snapshot struct {
	Components  []CourseComponent `json:"components"`
	Instructors []Instructor      `json:"instructors"`
	Programs    []Program         `json:"programs"`
	Assignments []Assignment      `json:"assignments"`
}
