package usecases

import (
	"context"
	"strings"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/domain/repositories"
)

// InvestmentUsecase handles investment requests and their review
type InvestmentUsecase struct {
	investments repositories.InvestmentRepository
	notifier    *NotificationService
	uow         repositories.UnitOfWork
}

func NewInvestmentUsecase(
	investments repositories.InvestmentRepository,
	notifier *NotificationService,
	uow repositories.UnitOfWork,
) *InvestmentUsecase {
	return &InvestmentUsecase{
		investments: investments,
		notifier:    notifier,
		uow:         uow,
	}
}

// Create records a pending investment for the user
func (u *InvestmentUsecase) Create(ctx context.Context, userID string, input *entities.CreateInvestmentInput) (*entities.Investment, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.NewError("amount must be greater than zero", domainerrors.ErrInvalidInput)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = entities.DefaultCurrency
	}

	return u.investments.Create(ctx, &entities.Investment{
		UserID:         userID,
		Amount:         input.Amount,
		Currency:       currency,
		Status:         entities.InvestmentStatusPending,
		InvestmentType: optional(input.InvestmentType),
	})
}

// UpdateStatus moves an investment to status and notifies its owner in the
// same unit of work
func (u *InvestmentUsecase) UpdateStatus(ctx context.Context, id string, status entities.InvestmentStatus) (*entities.Investment, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	inv, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.investments.UpdateStatus(txCtx, id, status); err != nil {
			return err
		}
		_, err := u.notifier.NotifyInvestmentStatusUpdate(txCtx, inv.UserID, inv.ID, string(status), inv.Amount, inv.Currency)
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.Get(ctx, id)
}

// Update applies an admin edit. Unknown fields are ignored by the store.
func (u *InvestmentUsecase) Update(ctx context.Context, id string, fields map[string]interface{}) (*entities.Investment, error) {
	if status, ok := fields["status"].(string); ok && !entities.InvestmentStatus(status).Valid() {
		return nil, domainerrors.ErrInvalidInput
	}
	if err := u.investments.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return u.Get(ctx, id)
}

func (u *InvestmentUsecase) Delete(ctx context.Context, id string) error {
	return u.investments.Delete(ctx, id)
}

// Get returns an investment by id
func (u *InvestmentUsecase) Get(ctx context.Context, id string) (*entities.Investment, error) {
	inv, err := u.investments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domainerrors.ErrNotFound
	}
	return inv, nil
}

// GetForUser returns an investment only if userID owns it
func (u *InvestmentUsecase) GetForUser(ctx context.Context, userID, id string) (*entities.Investment, error) {
	inv, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return inv, nil
}

func (u *InvestmentUsecase) ListForUser(ctx context.Context, userID string) ([]*entities.Investment, error) {
	return u.investments.ListByUserID(ctx, userID)
}

func (u *InvestmentUsecase) List(ctx context.Context) ([]*entities.Investment, error) {
	return u.investments.List(ctx)
}
