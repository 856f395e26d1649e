package models

// FestDetails describes a fest organised by a department
type FestDetails struct {
	Name     string   `json:"name" example:"TechX"`
	Date     string   `json:"date" example:"20 Aug 2025"`
	Location string   `json:"location" example:"Auditorium"`
	Budget   int64    `json:"budget" example:"50000"`
	Members  []string `json:"members"`
}
