package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/infrastructure/models"
	"glg-capital.backend/pkg/crypto"
	"glg-capital.backend/pkg/logger"
)

var hashPassword = crypto.HashPassword

// UserRepository implements the identity store
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create hashes the plaintext password, stores the user and returns the stored row.
// A duplicate email surfaces as the engine's constraint error.
func (r *UserRepository) Create(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = entities.UserRoleUser
	}

	now := nowFunc()
	m := &models.User{
		ID:           newID(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         string(role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		logger.Error(ctx, "User write not verified", zap.String("id", m.ID))
		return nil, &domainerrors.WriteVerificationError{Entity: "user", ID: m.ID}
	}
	return created, nil
}

// GetByID gets a user by ID, nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByEmail gets a user by email, nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *UserRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var m models.User
	if err := db.Where(query, arg).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var rows []models.User
	if err := db.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(rows))
	for i := range rows {
		users = append(users, toUserEntity(&rows[i]))
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, firstName, lastName, phone null.String) error {
	return r.update(ctx, id, map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
	})
}

// UpdatePassword stores an already hashed password
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.update(ctx, id, map[string]interface{}{"password_hash": passwordHash})
}

func (r *UserRepository) update(ctx context.Context, id string, updates map[string]interface{}) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	updates["updated_at"] = nowFunc()

	result := db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// EnsureAdmin creates an admin account unless the email is already taken.
func (r *UserRepository) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	existing, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	_, err = r.Create(ctx, &entities.CreateUserInput{
		Email:     email,
		Password:  password,
		FirstName: null.StringFrom("Admin"),
		LastName:  null.StringFrom("GLG"),
		Role:      entities.UserRoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		Role:         entities.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
