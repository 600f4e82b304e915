package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/infrastructure/models"
)

// InvestmentRepository implements the investment store
type InvestmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create stores a new investment, defaulting to EUR and pending.
func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) (*entities.Investment, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	currency := investment.Currency
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	status := investment.Status
	if status == "" {
		status = entities.InvestmentStatusPending
	}

	now := nowFunc()
	m := &models.Investment{
		ID:             newID(),
		UserID:         investment.UserID,
		Amount:         investment.Amount,
		Currency:       currency,
		Status:         string(status),
		InvestmentType: investment.InvestmentType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, &domainerrors.WriteVerificationError{Entity: "investment", ID: m.ID}
	}
	return created, nil
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id string) (*entities.Investment, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var m models.Investment
	if err := db.Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toInvestmentEntity(&m), nil
}

// ListByUserID returns the user's investments, newest first
func (r *InvestmentRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Investment, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *InvestmentRepository) List(ctx context.Context) ([]*entities.Investment, error) {
	return r.list(ctx, "")
}

func (r *InvestmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entities.Investment, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	q := db.Order("created_at DESC").Order("id DESC")
	if query != "" {
		q = q.Where(query, args...)
	}
	var rows []models.Investment
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Investment, 0, len(rows))
	for i := range rows {
		items = append(items, toInvestmentEntity(&rows[i]))
	}
	return items, nil
}

// UpdateStatus overwrites the status unconditionally.
func (r *InvestmentRepository) UpdateStatus(ctx context.Context, id string, status entities.InvestmentStatus) error {
	return r.apply(ctx, id, map[string]interface{}{"status": string(status)})
}

// Update writes only the allow-listed keys of fields. Unknown keys are
// dropped; when nothing is left no statement is issued.
func (r *InvestmentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates, err := investmentUpdates(fields)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return r.apply(ctx, id, updates)
}

func (r *InvestmentRepository) apply(ctx context.Context, id string, updates map[string]interface{}) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	updates["updated_at"] = nowFunc()

	result := db.Model(&models.Investment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the investment. Notifications that mention it are kept.
func (r *InvestmentRepository) Delete(ctx context.Context, id string) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	result := db.Delete(&models.Investment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func investmentUpdates(fields map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	for key, value := range fields {
		switch key {
		case "amount":
			amount, err := toDecimal(value)
			if err != nil {
				return nil, err
			}
			updates[key] = amount
		case "currency", "status":
			s, err := toText(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			updates[key] = s
		case "investment_type":
			switch v := value.(type) {
			case nil:
				updates[key] = nil
			case null.String:
				updates[key] = v
			default:
				s, err := toText(value)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", key, err)
				}
				updates[key] = s
			}
		}
	}
	return updates, nil
}

func toInvestmentEntity(m *models.Investment) *entities.Investment {
	return &entities.Investment{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         entities.InvestmentStatus(m.Status),
		InvestmentType: m.InvestmentType,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
