package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Client struct {
	ID          string      `gorm:"type:varchar(64);primaryKey"`
	UserID      string      `gorm:"type:varchar(64);not null;index"`
	CompanyName null.String `gorm:"type:varchar(200)"`
	TaxID       null.String `gorm:"type:varchar(64)"`
	Address     null.String `gorm:"type:varchar(255)"`
	City        null.String `gorm:"type:varchar(100)"`
	Country     null.String `gorm:"type:varchar(100)"`
	PostalCode  null.String `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
