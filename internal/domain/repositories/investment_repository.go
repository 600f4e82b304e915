package repositories

import (
	"context"

	"glg-capital.backend/internal/domain/entities"
)

type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.Investment) (*entities.Investment, error)
	GetByID(ctx context.Context, id string) (*entities.Investment, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.Investment, error)
	List(ctx context.Context) ([]*entities.Investment, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvestmentStatus) error
	// Update applies amount, currency, status and investment_type from fields.
	// Other keys are ignored; a map with none of them is a no-op.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
