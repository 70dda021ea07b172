package model

// Instructor is a person who may teach course components. Name is the
// natural key at import time: no two instructors share a name within
// one import batch.
type Instructor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// CreateInstructorRequest is the payload for creating an instructor.
type CreateInstructorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Specialty string `json:"specialty"`
}

// InstructorPatch is a partial update: only non-nil fields are applied.
type InstructorPatch struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Specialty *string `json:"specialty"`
}
