package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type KYCRecord struct {
	ID               string      `gorm:"type:varchar(64);primaryKey"`
	UserID           string      `gorm:"type:varchar(64);not null;index"`
	Status           string      `gorm:"type:varchar(20);not null;default:'pending'"`
	DocumentType     null.String `gorm:"type:varchar(64)"`
	DocumentURL      null.String `gorm:"column:document_url;type:text"`
	VerificationData null.String `gorm:"type:text"` // JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (KYCRecord) TableName() string {
	return "kyc_records"
}

type SimpleKYC struct {
	ID                       string      `gorm:"type:varchar(64);primaryKey"`
	UserID                   string      `gorm:"type:varchar(64);not null;index"`
	FirstName                string      `gorm:"type:varchar(100);not null"`
	LastName                 string      `gorm:"type:varchar(100);not null"`
	Email                    string      `gorm:"type:varchar(255);not null"`
	Phone                    string      `gorm:"type:varchar(32);not null"`
	Country                  string      `gorm:"type:varchar(100);not null"`
	City                     null.String `gorm:"type:varchar(100)"`
	Address                  null.String `gorm:"type:varchar(255)"`
	DateOfBirth              null.String `gorm:"type:varchar(32)"`
	Nationality              null.String `gorm:"type:varchar(100)"`
	EmploymentStatus         null.String `gorm:"type:varchar(64)"`
	AnnualIncome             null.String `gorm:"type:varchar(64)"`
	SourceOfFunds            null.String `gorm:"type:varchar(255)"`
	InvestmentExperience     null.String `gorm:"type:varchar(64)"`
	RiskTolerance            null.String `gorm:"type:varchar(64)"`
	InvestmentGoals          string      `gorm:"type:text;not null;default:'[]'"` // JSON array
	Status                   string      `gorm:"type:varchar(20);not null;default:'pending';index"`
	EmailVerified            bool        `gorm:"not null;default:false"`
	EmailVerificationCode    null.String `gorm:"type:varchar(16)"`
	EmailVerificationExpires *time.Time
	SubmittedAt              time.Time `gorm:"not null"`
	ReviewedAt               *time.Time
	ReviewedBy               null.String `gorm:"type:varchar(64)"`
	RejectionReason          null.String `gorm:"type:text"`
	Notes                    null.String `gorm:"type:text"`
	CreatedAt                time.Time
	UpdatedAt                time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (SimpleKYC) TableName() string {
	return "simple_kyc"
}
