package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/infrastructure/models"
)

// NotificationRepository implements the notification store
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) (*entities.Notification, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	status := n.Status
	if status == "" {
		status = entities.NotificationStatusUnread
	}
	now := nowFunc()
	m := &models.Notification{
		ID:        newID(),
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Status:    string(status),
		Metadata:  encodeJSON(n.Metadata),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, &domainerrors.WriteVerificationError{Entity: "notification", ID: m.ID}
	}
	return created, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*entities.Notification, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var m models.Notification
	if err := db.Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toNotificationEntity(&m), nil
}

// ListByUserID returns the user's notifications, newest first
func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Notification, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var rows []models.Notification
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Notification, 0, len(rows))
	for i := range rows {
		items = append(items, toNotificationEntity(&rows[i]))
	}
	return items, nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, id string, status entities.NotificationStatus) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	result := db.Model(&models.Notification{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": nowFunc(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkAllAsRead only touches unread rows, so read rows keep their updated_at.
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return 0, err
	}
	result := db.Model(&models.Notification{}).
		Where("user_id = ? AND status = ?", userID, string(entities.NotificationStatusUnread)).
		Updates(map[string]interface{}{
			"status":     string(entities.NotificationStatusRead),
			"updated_at": nowFunc(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toNotificationEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.NotificationType(m.Type),
		Title:     m.Title,
		Message:   m.Message,
		Status:    entities.NotificationStatus(m.Status),
		Metadata:  decodeJSON(m.Metadata),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
