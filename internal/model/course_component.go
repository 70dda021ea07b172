package model

// RequirementClass tells whether a course component is mandatory for
// its cohort or an elective.
type RequirementClass string

const (
	RequirementMandatory RequirementClass = "MANDATORY"
	RequirementElective  RequirementClass = "ELECTIVE"
)

// CourseComponent is a single teachable unit within a program and
// semester. Program and Name must be non-empty for the entity to exist;
// the importer drops rows that cannot satisfy that.
type CourseComponent struct {
	ID          string           `json:"id"`
	Program     string           `json:"program"`
	Semester    string           `json:"semester"`
	Name        string           `json:"name"`
	WeeklyHours int              `json:"weekly_hours"`
	Requirement RequirementClass `json:"requirement"`
	Code        string           `json:"code"`
	// Instructors holds the instructor names exactly as imported.
	// They are free text, not references into the instructor collection.
	Instructors []string `json:"instructors"`
}

// CreateComponentRequest is the payload for creating a course component.
type CreateComponentRequest struct {
	Program     string           `json:"program" binding:"required"`
	Semester    string           `json:"semester"`
	Name        string           `json:"name" binding:"required"`
	WeeklyHours int              `json:"weekly_hours" binding:"gte=0"`
	Requirement RequirementClass `json:"requirement" binding:"omitempty,oneof=MANDATORY ELECTIVE"`
	Code        string           `json:"code"`
	Instructors []string         `json:"instructors"`
}

// ComponentPatch is a partial update: only non-nil fields are applied.
type ComponentPatch struct {
	Program     *string           `json:"program"`
	Semester    *string           `json:"semester"`
	Name        *string           `json:"name"`
	WeeklyHours *int              `json:"weekly_hours" binding:"omitempty,gte=0"`
	Requirement *RequirementClass `json:"requirement" binding:"omitempty,oneof=MANDATORY ELECTIVE"`
	Code        *string           `json:"code"`
	Instructors []string          `json:"instructors"`
}
