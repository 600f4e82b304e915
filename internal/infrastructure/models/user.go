package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type User struct {
	ID           string      `gorm:"type:varchar(64);primaryKey"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	FirstName    null.String `gorm:"type:varchar(100)"`
	LastName     null.String `gorm:"type:varchar(100)"`
	Phone        null.String `gorm:"type:varchar(32)"`
	Role         string      `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
