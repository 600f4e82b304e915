package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/infrastructure/models"
)

// KYCRecordRepository implements the legacy document KYC store
type KYCRecordRepository struct {
	db *gorm.DB
}

func NewKYCRecordRepository(db *gorm.DB) *KYCRecordRepository {
	return &KYCRecordRepository{db: db}
}

func (r *KYCRecordRepository) Create(ctx context.Context, record *entities.KYCRecord) (*entities.KYCRecord, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	status := record.Status
	if status == "" {
		status = entities.KYCStatusPending
	}
	now := nowFunc()
	m := &models.KYCRecord{
		ID:               newID(),
		UserID:           record.UserID,
		Status:           string(status),
		DocumentType:     record.DocumentType,
		DocumentURL:      record.DocumentURL,
		VerificationData: encodeJSON(record.VerificationData),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, &domainerrors.WriteVerificationError{Entity: "kyc_record", ID: m.ID}
	}
	return created, nil
}

func (r *KYCRecordRepository) GetByID(ctx context.Context, id string) (*entities.KYCRecord, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *KYCRecordRepository) GetByUserID(ctx context.Context, userID string) (*entities.KYCRecord, error) {
	return r.getBy(ctx, "user_id = ?", userID)
}

func (r *KYCRecordRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.KYCRecord, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var m models.KYCRecord
	if err := db.Where(query, arg).Order("created_at DESC").Order("id DESC").Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toKYCRecordEntity(&m), nil
}

func (r *KYCRecordRepository) List(ctx context.Context) ([]*entities.KYCRecord, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var rows []models.KYCRecord
	if err := db.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]*entities.KYCRecord, 0, len(rows))
	for i := range rows {
		records = append(records, toKYCRecordEntity(&rows[i]))
	}
	return records, nil
}

// UpdateStatus overwrites the status unconditionally.
func (r *KYCRecordRepository) UpdateStatus(ctx context.Context, id string, status entities.KYCStatus) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	result := db.Model(&models.KYCRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
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

func toKYCRecordEntity(m *models.KYCRecord) *entities.KYCRecord {
	return &entities.KYCRecord{
		ID:               m.ID,
		UserID:           m.UserID,
		Status:           entities.KYCStatus(m.Status),
		DocumentType:     m.DocumentType,
		DocumentURL:      m.DocumentURL,
		VerificationData: decodeJSON(m.VerificationData),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
