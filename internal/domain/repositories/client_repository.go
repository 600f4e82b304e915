package repositories

import (
	"context"

	"glg-capital.backend/internal/domain/entities"
)

type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) (*entities.Client, error)
	GetByID(ctx context.Context, id string) (*entities.Client, error)
	GetByUserID(ctx context.Context, userID string) (*entities.Client, error)
	List(ctx context.Context) ([]*entities.Client, error)
	Update(ctx context.Context, client *entities.Client) error
}
