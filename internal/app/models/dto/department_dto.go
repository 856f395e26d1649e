package dto

// OrganiseFestRequest represents a department fest
type OrganiseFestRequest struct {
	Name     string   `json:"name" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Location string   `json:"location" binding:"required"`
	Budget   int64    `json:"budget" binding:"min=0"`
	Members  []string `json:"members"`
}
