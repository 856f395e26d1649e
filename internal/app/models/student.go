package models

import "fmt"

// Student is a student record. Fees accumulates every amount charged or paid
// by the hostel and the accounts department.
type Student struct {
	ID     string  `json:"id" example:"S101"`
	RollNo string  `json:"rollNo" example:"2021CS101"`
	Name   string  `json:"name" example:"Amit Sharma"`
	Year   int     `json:"year" example:"2"`
	Course *Course `json:"course,omitempty"`
	Branch string  `json:"branch" example:"Computer Science and Engineering"`
	Phone  string  `json:"phone" example:"9000000001"`
	Email  string  `json:"email" example:"amit@college.edu"`
	Fees   int64   `json:"fees" example:"0"`
}

// Profile renders the student's display line
func (s *Student) Profile() string {
	return fmt.Sprintf("ID: %s, Roll No: %s, Name: %s, Year: %d, Course: %s, Branch: %s, Phone: %s, Email: %s",
		s.ID, s.RollNo, s.Name, s.Year, s.Course, s.Branch, s.Phone, s.Email)
}
