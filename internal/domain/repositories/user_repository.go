package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"glg-capital.backend/internal/domain/entities"
)

// UserRepository defines user data operations.
// Point lookups return (nil, nil) when the user does not exist.
type UserRepository interface {
	Create(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	UpdateProfile(ctx context.Context, id string, firstName, lastName, phone null.String) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Count(ctx context.Context) (int64, error)
	// EnsureAdmin creates an admin with email unless a user with that email exists.
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}
