package models

// MemberRecord is a society member or volunteer entry
type MemberRecord struct {
	Name       string `json:"name" example:"Amit Sharma"`
	StudentID  string `json:"studentId" example:"S101"`
	Department string `json:"department" example:"Computer Science and Engineering"`
}
