package models

// Course represents a programme offered by the college (B.Tech, M.Tech, ...)
type Course struct {
	ID   string `json:"id" example:"C01"`
	Name string `json:"name" example:"B.Tech"`
}

// String returns the course name
func (c *Course) String() string {
	if c == nil {
		return ""
	}
	return c.Name
}
