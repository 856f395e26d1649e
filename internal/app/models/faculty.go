package models

import "fmt"

// Faculty is a teaching staff member
type Faculty struct {
	ID         string `json:"id" example:"F201"`
	Name       string `json:"name" example:"Dr. Anil Singh"`
	Department string `json:"department" example:"Computer Science and Engineering"`
	Phone      string `json:"phone" example:"8000000001"`
	Email      string `json:"email" example:"anil@college.edu"`
}

// Profile renders the faculty member's display line
func (f *Faculty) Profile() string {
	return fmt.Sprintf("ID: %s, Name: %s, Department: %s, Phone: %s, Email: %s",
		f.ID, f.Name, f.Department, f.Phone, f.Email)
}
