package dto

// CreateFacultyRequest represents a new faculty member
type CreateFacultyRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone" binding:"omitempty,phone"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// FacultyRef names an existing faculty member by ID
type FacultyRef struct {
	FacultyID string `json:"facultyId" binding:"required"`
}
