package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Client holds the company and address details of a user, one per user.
type Client struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	CompanyName null.String `json:"companyName"`
	TaxID       null.String `json:"taxId"`
	Address     null.String `json:"address"`
	City        null.String `json:"city"`
	Country     null.String `json:"country"`
	PostalCode  null.String `json:"postalCode"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ClientInput represents the client settings form
type ClientInput struct {
	CompanyName string `json:"companyName" binding:"max=200"`
	TaxID       string `json:"taxId" binding:"max=64"`
	Address     string `json:"address" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	Country     string `json:"country" binding:"max=100"`
	PostalCode  string `json:"postalCode" binding:"max=20"`
}

// ApplyTo copies the form onto c; empty strings become null.
func (in ClientInput) ApplyTo(c *Client) {
	c.CompanyName = null.NewString(in.CompanyName, in.CompanyName != "")
	c.TaxID = null.NewString(in.TaxID, in.TaxID != "")
	c.Address = null.NewString(in.Address, in.Address != "")
	c.City = null.NewString(in.City, in.City != "")
	c.Country = null.NewString(in.Country, in.Country != "")
	c.PostalCode = null.NewString(in.PostalCode, in.PostalCode != "")
}
