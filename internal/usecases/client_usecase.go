package usecases

import (
	"context"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/domain/repositories"
)

// ClientUsecase manages the client settings of a user
type ClientUsecase struct {
	clientRepo repositories.ClientRepository
}

func NewClientUsecase(clientRepo repositories.ClientRepository) *ClientUsecase {
	return &ClientUsecase{clientRepo: clientRepo}
}

// GetForUser returns the client row of the user
func (u *ClientUsecase) GetForUser(ctx context.Context, userID string) (*entities.Client, error) {
	client, err := u.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domainerrors.ErrNotFound
	}
	return client, nil
}

// SaveForUser updates the client row of the user, creating it on first save.
func (u *ClientUsecase) SaveForUser(ctx context.Context, userID string, input *entities.ClientInput) (*entities.Client, error) {
	client, err := u.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client = &entities.Client{UserID: userID}
		input.ApplyTo(client)
		return u.clientRepo.Create(ctx, client)
	}

	input.ApplyTo(client)
	if err := u.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return u.GetForUser(ctx, userID)
}

// Get returns a client by id
func (u *ClientUsecase) Get(ctx context.Context, id string) (*entities.Client, error) {
	client, err := u.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domainerrors.ErrNotFound
	}
	return client, nil
}

// List returns every client, newest first
func (u *ClientUsecase) List(ctx context.Context) ([]*entities.Client, error) {
	return u.clientRepo.List(ctx)
}
