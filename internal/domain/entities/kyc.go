package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// KYCStatus is the review state of a legacy KYC record
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

func (s KYCStatus) Valid() bool {
	switch s {
	case KYCStatusPending, KYCStatusApproved, KYCStatusRejected:
		return true
	}
	return false
}

// KYCRecord is a document based KYC submission.
type KYCRecord struct {
	ID               string      `json:"id"`
	UserID           string      `json:"userId"`
	Status           KYCStatus   `json:"status"`
	DocumentType     null.String `json:"documentType"`
	DocumentURL      null.String `json:"documentUrl"`
	VerificationData null.JSON   `json:"verificationData"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// SubmitKYCRecordInput represents a legacy KYC document submission
type SubmitKYCRecordInput struct {
	DocumentType     string    `json:"documentType" binding:"required,max=64"`
	DocumentURL      string    `json:"documentUrl" binding:"omitempty,url"`
	VerificationData null.JSON `json:"verificationData"`
}

// SimpleKYCStatus is the onboarding state of a SimpleKYC form
type SimpleKYCStatus string

const (
	SimpleKYCPending       SimpleKYCStatus = "pending"
	SimpleKYCEmailVerified SimpleKYCStatus = "email_verified"
	SimpleKYCUnderReview   SimpleKYCStatus = "under_review"
	SimpleKYCApproved      SimpleKYCStatus = "approved"
	SimpleKYCRejected      SimpleKYCStatus = "rejected"
)

// Reviewable reports whether an admin may set the form to this status.
func (s SimpleKYCStatus) Reviewable() bool {
	switch s {
	case SimpleKYCUnderReview, SimpleKYCApproved, SimpleKYCRejected:
		return true
	}
	return false
}

// SimpleKYC is the onboarding form with its e-mail verification workflow.
type SimpleKYC struct {
	ID                       string          `json:"id"`
	UserID                   string          `json:"userId"`
	FirstName                string          `json:"firstName"`
	LastName                 string          `json:"lastName"`
	Email                    string          `json:"email"`
	Phone                    string          `json:"phone"`
	Country                  string          `json:"country"`
	City                     null.String     `json:"city"`
	Address                  null.String     `json:"address"`
	DateOfBirth              null.String     `json:"dateOfBirth"`
	Nationality              null.String     `json:"nationality"`
	EmploymentStatus         null.String     `json:"employmentStatus"`
	AnnualIncome             null.String     `json:"annualIncome"`
	SourceOfFunds            null.String     `json:"sourceOfFunds"`
	InvestmentExperience     null.String     `json:"investmentExperience"`
	RiskTolerance            null.String     `json:"riskTolerance"`
	InvestmentGoals          []string        `json:"investmentGoals"`
	Status                   SimpleKYCStatus `json:"status"`
	EmailVerified            bool            `json:"emailVerified"`
	EmailVerificationCode    null.String     `json:"-"`
	EmailVerificationExpires null.Time       `json:"emailVerificationExpires"`
	SubmittedAt              time.Time       `json:"submittedAt"`
	ReviewedAt               null.Time       `json:"reviewedAt"`
	ReviewedBy               null.String     `json:"reviewedBy"`
	RejectionReason          null.String     `json:"rejectionReason"`
	Notes                    null.String     `json:"notes"`
	CreatedAt                time.Time       `json:"createdAt"`
	UpdatedAt                time.Time       `json:"updatedAt"`
}

// SubmitSimpleKYCInput represents the onboarding form
type SubmitSimpleKYCInput struct {
	FirstName            string   `json:"firstName" binding:"required,max=100"`
	LastName             string   `json:"lastName" binding:"required,max=100"`
	Email                string   `json:"email" binding:"required,email"`
	Phone                string   `json:"phone" binding:"required,max=32"`
	Country              string   `json:"country" binding:"required,max=100"`
	City                 string   `json:"city"`
	Address              string   `json:"address"`
	DateOfBirth          string   `json:"dateOfBirth"`
	Nationality          string   `json:"nationality"`
	EmploymentStatus     string   `json:"employmentStatus"`
	AnnualIncome         string   `json:"annualIncome"`
	SourceOfFunds        string   `json:"sourceOfFunds"`
	InvestmentExperience string   `json:"investmentExperience"`
	RiskTolerance        string   `json:"riskTolerance"`
	InvestmentGoals      []string `json:"investmentGoals"`
	Notes                string   `json:"notes"`
}

// ToEntity builds an unsaved SimpleKYC owned by userID.
func (in SubmitSimpleKYCInput) ToEntity(userID string) *SimpleKYC {
	opt := func(s string) null.String { return null.NewString(s, s != "") }
	return &SimpleKYC{
		UserID:               userID,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Phone:                in.Phone,
		Country:              in.Country,
		City:                 opt(in.City),
		Address:              opt(in.Address),
		DateOfBirth:          opt(in.DateOfBirth),
		Nationality:          opt(in.Nationality),
		EmploymentStatus:     opt(in.EmploymentStatus),
		AnnualIncome:         opt(in.AnnualIncome),
		SourceOfFunds:        opt(in.SourceOfFunds),
		InvestmentExperience: opt(in.InvestmentExperience),
		RiskTolerance:        opt(in.RiskTolerance),
		InvestmentGoals:      in.InvestmentGoals,
		Notes:                opt(in.Notes),
	}
}

// VerifyEmailInput carries the one-time code sent to the applicant
type VerifyEmailInput struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// ReviewKYCInput represents an admin decision on a KYC submission
type ReviewKYCInput struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}
