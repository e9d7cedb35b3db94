package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           string         `gorm:"primaryKey;type:uuid"`
	Name         string         `gorm:"not null;size:255"`
	UpiID        string         `gorm:"column:upi_id;uniqueIndex;not null;size:255"`
	Phone        string         `gorm:"uniqueIndex;not null;size:32"`
	PasswordHash string         `gorm:"not null;size:255"`
	Balance      int64          `gorm:"not null;check:balance >= 0"` // Balance in cents
	Categories   []UserCategory `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// UserCategory is one spending category of a user.
// NameKey is the lower-cased name and carries the per-user uniqueness.
type UserCategory struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_user_categories_user_name,priority:1"`
	Name     string `gorm:"not null;size:100"`
	NameKey  string `gorm:"not null;size:100;uniqueIndex:idx_user_categories_user_name,priority:2"`
	Type     string `gorm:"not null;size:20"`
	Spent    int64  `gorm:"not null;default:0"`
	Received int64  `gorm:"not null;default:0"`
	Limit    int64  `gorm:"column:limit_amount;not null;default:0"`
	Position int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for UserCategory
func (UserCategory) TableName() string {
	return "user_categories"
}
