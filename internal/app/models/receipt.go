package models

import "time"

// FeeReceipt records one payment taken by the accounts department
type FeeReceipt struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paidAt"`
}
