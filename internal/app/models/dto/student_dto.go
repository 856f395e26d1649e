package dto

// CreateStudentRequest represents a new student record
type CreateStudentRequest struct {
	ID       string `json:"id" binding:"required"`
	RollNo   string `json:"rollNo" binding:"required"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Year     int    `json:"year" binding:"required,min=1,max=6"`
	CourseID string `json:"courseId" binding:"required"`
	Branch   string `json:"branch" binding:"required"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// StudentRef names an existing student by ID
type StudentRef struct {
	StudentID string `json:"studentId" binding:"required"`
}

// StudentListResponse is one page of students
type StudentListResponse struct {
	Students interface{} `json:"students"`
	PaginationInfo
}
