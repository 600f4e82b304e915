package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Notification struct {
	ID        string      `gorm:"type:varchar(64);primaryKey"`
	UserID    string      `gorm:"type:varchar(64);not null;index"`
	Type      string      `gorm:"type:varchar(32);not null"`
	Title     string      `gorm:"type:varchar(255);not null"`
	Message   string      `gorm:"type:text;not null"`
	Status    string      `gorm:"type:varchar(10);not null;default:'unread'"`
	Metadata  null.String `gorm:"type:text"` // JSON
	CreatedAt time.Time
	UpdatedAt time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
