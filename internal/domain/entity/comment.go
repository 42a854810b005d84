package entity

import "time"

// Comment is a free-standing guestbook-style comment. It deliberately carries
// no foreign key and identifies its author only by a free-text username.
type Comment struct {
	ID        uint
	Username  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
