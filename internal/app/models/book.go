package models

// BookStock holds the two independent copy counters of a library title
type BookStock struct {
	Rentable    int `json:"rentable"`
	NonRentable int `json:"nonRentable"`
}
