// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. The phone number is the unique login
// identifier; api_token holds the single active bearer token.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255)"`
	PhoneNumber  string `gorm:"type:varchar(32);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	APIToken     string `gorm:"column:api_token;type:varchar(64);index"`
	Role         string `gorm:"type:varchar(32);not null;default:customer"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// MemberModel mirrors the 'members' table, linking a provider to the user
// account that operates it.
type MemberModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
