package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type NotificationType string

const (
	NotificationTypeKYCStatus        NotificationType = "kyc_status"
	NotificationTypeInvestmentStatus NotificationType = "investment_status"
	NotificationTypeSystem           NotificationType = "system"
	NotificationTypeAdminMessage     NotificationType = "admin_message"
)

type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

// Notification is a user visible message recorded on a state change.
type Notification struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Type      NotificationType   `json:"type"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Status    NotificationStatus `json:"status"`
	Metadata  null.JSON          `json:"metadata"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// AdminMessageInput represents a message sent from the admin console
type AdminMessageInput struct {
	UserID  string `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Stats summarises the back-office tables for the admin dashboard
type Stats struct {
	Users              int64 `json:"users"`
	Clients            int   `json:"clients"`
	PendingKYC         int   `json:"pendingKyc"`
	PendingSimpleKYC   int   `json:"pendingSimpleKyc"`
	Investments        int   `json:"investments"`
	PendingInvestments int   `json:"pendingInvestments"`
}
