package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// DefaultCurrency is used when an investment is created without one
const DefaultCurrency = "EUR"

// InvestmentStatus represents the lifecycle of an investment
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusActive    InvestmentStatus = "active"
	InvestmentStatusCompleted InvestmentStatus = "completed"
	InvestmentStatusCancelled InvestmentStatus = "cancelled"
)

func (s InvestmentStatus) Valid() bool {
	switch s {
	case InvestmentStatusPending, InvestmentStatusActive, InvestmentStatusCompleted, InvestmentStatusCancelled:
		return true
	}
	return false
}

type Investment struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	Amount         decimal.Decimal  `json:"amount"`
	Currency       string           `json:"currency"`
	Status         InvestmentStatus `json:"status"`
	InvestmentType null.String      `json:"investmentType"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// CreateInvestmentInput represents a new investment request
type CreateInvestmentInput struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"omitempty,len=3"`
	InvestmentType string          `json:"investmentType"`
}

// UpdateInvestmentStatusInput represents an admin status change
type UpdateInvestmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}
