package user

import (
	"time"

	"gorm.io/gorm"
)

// User represents a stored user record
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`

	UserID int64  `json:"user_id" gorm:"column:user_id;unique;not null"`
	Name   string `json:"name" gorm:"size:50"`
}

// TableName sets the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user record
func NewUser(userID int64, name string) *User {
	return &User{
		UserID: userID,
		Name:   name,
	}
}

// Item is the transport shape of a user, decoupled from the gorm entity
type Item struct {
	ID        uint      `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
