package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/infrastructure/models"
)

// ClientRepository implements the client store
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create stores the client and returns the row as read back.
func (r *ClientRepository) Create(ctx context.Context, client *entities.Client) (*entities.Client, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	if client.UserID == "" {
		return nil, fmt.Errorf("failed to create client: %w: user_id is required", domainerrors.ErrInvalidInput)
	}

	now := nowFunc()
	m := toClientModel(client)
	m.ID = newID()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := db.Create(m).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create client: %w", &domainerrors.WriteVerificationError{Entity: "client", ID: m.ID})
	}
	return created, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*entities.Client, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *ClientRepository) GetByUserID(ctx context.Context, userID string) (*entities.Client, error) {
	return r.getBy(ctx, "user_id = ?", userID)
}

func (r *ClientRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.Client, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var m models.Client
	if err := db.Where(query, arg).Order("created_at DESC").Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toClientEntity(&m), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*entities.Client, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var rows []models.Client
	if err := db.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	clients := make([]*entities.Client, 0, len(rows))
	for i := range rows {
		clients = append(clients, toClientEntity(&rows[i]))
	}
	return clients, nil
}

// Update overwrites the company and address fields
func (r *ClientRepository) Update(ctx context.Context, client *entities.Client) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	result := db.Model(&models.Client{}).Where("id = ?", client.ID).Updates(map[string]interface{}{
		"company_name": client.CompanyName,
		"tax_id":       client.TaxID,
		"address":      client.Address,
		"city":         client.City,
		"country":      client.Country,
		"postal_code":  client.PostalCode,
		"updated_at":   nowFunc(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toClientModel(c *entities.Client) *models.Client {
	return &models.Client{
		ID:          c.ID,
		UserID:      c.UserID,
		CompanyName: c.CompanyName,
		TaxID:       c.TaxID,
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		PostalCode:  c.PostalCode,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toClientEntity(m *models.Client) *entities.Client {
	return &entities.Client{
		ID:          m.ID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		TaxID:       m.TaxID,
		Address:     m.Address,
		City:        m.City,
		Country:     m.Country,
		PostalCode:  m.PostalCode,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
