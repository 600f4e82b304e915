package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

type Investment struct {
	ID             string          `gorm:"type:varchar(64);primaryKey"`
	UserID         string          `gorm:"type:varchar(64);not null;index"`
	Amount         decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'EUR'"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending'"`
	InvestmentType null.String     `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
