package entity

import "time"

// Product is a sellable item. Price is kept in the smallest currency unit.
// BrandID must reference an existing brand; ProviderID is optional and feeds
// the per-provider product listing.
type Product struct {
	ID          uint
	Name        string
	Price       int64
	Description string
	Slug        string // Unique, URL-safe identifier distinct from ID.
	Stock       bool
	BrandID     uint
	ProviderID  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
