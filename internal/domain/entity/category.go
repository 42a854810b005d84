package entity

import "time"

// Category is a leaf taxonomy entity: a name with a unique slug.
type Category struct {
	ID        uint
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
