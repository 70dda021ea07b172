package model

// Assignment binds one course component to one instructor with a
// recurring weekly time window. Component and instructor are weak
// references by id: lookups against the owning collections may fail
// and callers must handle absence without error.
type Assignment struct {
	ID           string    `json:"id"`
	ComponentID  string    `json:"component_id"`
	InstructorID string    `json:"instructor_id"`
	Weekdays     []Weekday `json:"weekdays"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	// DailyHours is derived from the time window and recomputed
	// whenever start and end change together.
	DailyHours float64 `json:"daily_hours"`
}

// CreateAssignmentRequest is the payload for creating an assignment.
// Times are wall-clock "HH:MM".
type CreateAssignmentRequest struct {
	ComponentID  string    `json:"component_id" binding:"required"`
	InstructorID string    `json:"instructor_id" binding:"required"`
	Weekdays     []Weekday `json:"weekdays" binding:"required,min=1"`
	StartTime    string    `json:"start_time" binding:"required,datetime=15:04"`
	EndTime      string    `json:"end_time" binding:"required,datetime=15:04"`
}

// AssignmentPatch is a partial update: only non-nil fields are applied.
// Daily hours are recomputed only when start and end are both supplied
// in the same patch.
type AssignmentPatch struct {
	ComponentID  *string   `json:"component_id"`
	InstructorID *string   `json:"instructor_id"`
	Weekdays     []Weekday `json:"weekdays" binding:"omitempty,min=1"`
	StartTime    *string   `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime      *string   `json:"end_time" binding:"omitempty,datetime=15:04"`
}
