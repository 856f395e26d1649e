package dto

// NameRequest carries a single name: an instrument, a society head, a
// startup, an event, the NNF director
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// MemberRecordRequest represents a society member or volunteer
type MemberRecordRequest struct {
	Name       string `json:"name" binding:"required"`
	StudentID  string `json:"studentId" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// RoomMembersRequest allocates a hostel room
type RoomMembersRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required,min=1,dive,required"`
}

// AmountRequest carries a hostel charge or fee payment
type AmountRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// FeePaymentRequest represents a payment at the accounts department
type FeePaymentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

// BookStockRequest adds or removes copies of a title
type BookStockRequest struct {
	Title string `json:"title" binding:"required"`
	Count int    `json:"count" binding:"required,gt=0"`
	Kind  string `json:"kind" binding:"required,oneof=rentable non-rentable"`
}

// BookLoanRequest issues or returns a title for a student
type BookLoanRequest struct {
	Title     string `json:"title" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
}

// AssignGradeRequest represents one grade given by a faculty member
type AssignGradeRequest struct {
	FacultyID string `json:"facultyId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
	Year      int    `json:"year" binding:"required,min=1,max=6"`
	Semester  int    `json:"semester" binding:"required,min=1,max=2"`
	Subject   string `json:"subject" binding:"required"`
	Grade     string `json:"grade" binding:"required,grade"`
}

// UpdateGradesRequest replaces a student's grade book: year to semester to
// subject to grade
type UpdateGradesRequest struct {
	Grades map[int]map[int]map[string]string `json:"grades" binding:"required"`
}

// OrderItemRequest orders a canteen item for a student
type OrderItemRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Item      string `json:"item" binding:"required"`
}

// MenuItemRequest adds or reprices a canteen item
type MenuItemRequest struct {
	Item  string `json:"item" binding:"required"`
	Price int64  `json:"price" binding:"required,gt=0"`
}
