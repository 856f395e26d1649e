package models

import "fmt"

// CollegeInfo identifies the institution every campus entity belongs to.
// It is loaded once from configuration and handed to whoever needs it.
type CollegeInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// String renders the college header line
func (c CollegeInfo) String() string {
	return fmt.Sprintf("College Name: %s, College Address: %s", c.Name, c.Address)
}
