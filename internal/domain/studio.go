package domain

import "fmt"

type Studio struct {
	ID         int64   `json:"id"`
	StudioID   string  `json:"studioId"`
	StudioName string  `json:"studioName"`
	OwnerName  string  `json:"ownerName"`
	Contact    string  `json:"contact"`
	Services   int     `json:"services"`
	Rating     float64 `json:"rating"`
	Status     bool    `json:"status"`
}

func (s Studio) EntityID() int64 { return s.ID }

// StudioCode renders the display code for a numeric studio id, e.g. 1 -> STU10001.
func StudioCode(id int64) string {
	return fmt.Sprintf("STU%d", 10000+id)
}
