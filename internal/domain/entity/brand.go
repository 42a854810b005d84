package entity

import "time"

// Brand is a leaf taxonomy entity: a name with a unique slug.
type Brand struct {
	ID        uint
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
