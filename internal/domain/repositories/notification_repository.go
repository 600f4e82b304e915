package repositories

import (
	"context"

	"glg-capital.backend/internal/domain/entities"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) (*entities.Notification, error)
	GetByID(ctx context.Context, id string) (*entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.Notification, error)
	UpdateStatus(ctx context.Context, id string, status entities.NotificationStatus) error
	// MarkAllAsRead flips unread rows of the user to read and returns how many changed.
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
}
