package entity

import "time"

// Company representa un tenant del usuario. Como máximo una por usuario tiene Selected = true.
type Company struct {
	ID            string
	UserID        string
	Name          string // único por usuario
	GSTNumber     string
	Phone         string
	Email         string
	PlaceOfSupply string
	Address       string
	State         string
	Selected      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
