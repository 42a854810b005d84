package model

import "time"

// ProviderModel mirrors the 'providers' table.
type ProviderModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Slug      string `gorm:"type:varchar(255);unique;not null"`
	Address   string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(32)"`
	MemberID  *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Member *MemberModel `gorm:"foreignKey:MemberID"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}

// ProductModel mirrors the 'products' table. BrandID carries a real foreign
// key so the database enforces brand existence on create and update.
type ProductModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	Price       int64  `gorm:"not null"`
	Description string `gorm:"type:varchar(255)"`
	Slug        string `gorm:"type:varchar(255);unique;not null"`
	Stock       bool   `gorm:"not null;default:true"`
	BrandID     uint   `gorm:"not null"`
	ProviderID  *uint  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Brand    *BrandModel    `gorm:"foreignKey:BrandID"`
	Provider *ProviderModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Slug      string `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Slug      string `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CommentModel mirrors the 'comments' table. No foreign keys: comments are
// anonymous guestbook entries identified only by a free-text username.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(100);not null"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
