package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/domain/repositories"
	"glg-capital.backend/pkg/logger"
	"glg-capital.backend/pkg/metrics"
)

const adminMessageTitle = "Message from GLG Capital"

// NotificationService records user visible notifications for state changes
type NotificationService struct {
	repo repositories.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyKYCStatusUpdate tells the user their KYC review moved to status.
func (s *NotificationService) NotifyKYCStatusUpdate(ctx context.Context, userID, status string) (*entities.Notification, error) {
	var title, message string
	switch status {
	case "approved":
		title = "KYC Approved"
		message = "Your KYC verification has been approved. You can now access all investment features."
	case "rejected":
		title = "KYC Rejected"
		message = "Your KYC verification has been rejected. Please review your documents and submit again."
	case "pending":
		title = "KYC Under Review"
		message = "Your KYC documents are being reviewed. We will notify you once the review is complete."
	default:
		title = "KYC Status Update"
		message = "Your KYC status has been updated to: " + status
	}

	return s.create(ctx, userID, entities.NotificationTypeKYCStatus, title, message, map[string]interface{}{
		"kyc_status": status,
	})
}

// NotifyInvestmentStatusUpdate tells the user an investment moved to status
func (s *NotificationService) NotifyInvestmentStatusUpdate(
	ctx context.Context,
	userID, investmentID, status string,
	amount decimal.Decimal,
	currency string,
) (*entities.Notification, error) {
	value := amount.StringFixed(2) + " " + currency

	var title, message string
	switch status {
	case "approved", "active":
		title = "Investment Approved"
		message = fmt.Sprintf("Your investment of %s has been approved and is now active.", value)
	case "rejected", "cancelled":
		title = "Investment Cancelled"
		message = fmt.Sprintf("Your investment of %s has been %s. Please contact support for more information.", value, status)
	case "completed":
		title = "Investment Completed"
		message = fmt.Sprintf("Your investment of %s has been completed.", value)
	case "pending":
		title = "Investment Pending"
		message = fmt.Sprintf("Your investment of %s is pending review.", value)
	default:
		title = "Investment Status Update"
		message = fmt.Sprintf("Your investment of %s status has been updated to: %s", value, status)
	}

	return s.create(ctx, userID, entities.NotificationTypeInvestmentStatus, title, message, map[string]interface{}{
		"investment_id": investmentID,
		"status":        status,
		"amount":        amount.String(),
		"currency":      currency,
	})
}

// NotifyAdminMessage records a message written by an administrator
func (s *NotificationService) NotifyAdminMessage(ctx context.Context, userID, message string) (*entities.Notification, error) {
	return s.create(ctx, userID, entities.NotificationTypeAdminMessage, adminMessageTitle, message, nil)
}

// NotifySystemMessage records a system message
func (s *NotificationService) NotifySystemMessage(ctx context.Context, userID, title, message string) (*entities.Notification, error) {
	return s.create(ctx, userID, entities.NotificationTypeSystem, title, message, nil)
}

// ListForUser returns the user's notifications, newest first
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*entities.Notification, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// GetUnreadCount counts the unread notifications of the user.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	list, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range list {
		if n.Status == entities.NotificationStatusUnread {
			count++
		}
	}
	return count, nil
}

// MarkAsRead marks one notification of the user as read.
// A notification owned by someone else is reported as not found.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id string) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil || n.UserID != userID {
		return domainerrors.ErrNotFound
	}
	if n.Status == entities.NotificationStatusRead {
		return nil
	}
	return s.repo.UpdateStatus(ctx, id, entities.NotificationStatusRead)
}

// MarkAllAsRead marks every unread notification of the user as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) create(
	ctx context.Context,
	userID string,
	typ entities.NotificationType,
	title, message string,
	metadata map[string]interface{},
) (*entities.Notification, error) {
	if userID == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	n := &entities.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Status:  entities.NotificationStatusUnread,
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, err
		}
		n.Metadata = null.JSONFrom(raw)
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		logger.Error(ctx, "failed to record notification",
			zap.String("user_id", userID),
			zap.String("type", string(typ)),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.NotificationsCreated.WithLabelValues(string(typ)).Inc()
	return created, nil
}
