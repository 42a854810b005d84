package entity

import "time"

// Provider is a seller listed in the shop. A provider may be backed by a
// member record linking it to an underlying user account.
type Provider struct {
	ID        uint
	Name      string
	Slug      string // Unique, URL-safe identifier distinct from ID.
	Address   string
	Phone     string
	MemberID  *uint // Optional link to the members table.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProviderAccount is the denormalized read view returned by provider listings:
// the provider row joined through members to the backing user account.
// It is a projection only; writes always go through Provider.
type ProviderAccount struct {
	Provider
	AccountName  string
	AccountEmail string
}
