package usecases

import (
	"context"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/domain/repositories"
)

// AdminUsecase backs the admin console dashboard and messaging
type AdminUsecase struct {
	users       repositories.UserRepository
	clients     repositories.ClientRepository
	records     repositories.KYCRecordRepository
	forms       repositories.SimpleKYCRepository
	investments repositories.InvestmentRepository
	notifier    *NotificationService
}

func NewAdminUsecase(
	users repositories.UserRepository,
	clients repositories.ClientRepository,
	records repositories.KYCRecordRepository,
	forms repositories.SimpleKYCRepository,
	investments repositories.InvestmentRepository,
	notifier *NotificationService,
) *AdminUsecase {
	return &AdminUsecase{
		users:       users,
		clients:     clients,
		records:     records,
		forms:       forms,
		investments: investments,
		notifier:    notifier,
	}
}

func (u *AdminUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.users.List(ctx)
}

// Stats counts the rows an admin has to act on
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.Stats, error) {
	var stats entities.Stats
	var err error

	if stats.Users, err = u.users.Count(ctx); err != nil {
		return nil, err
	}

	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Clients = len(clients)

	records, err := u.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Status == entities.KYCStatusPending {
			stats.PendingKYC++
		}
	}

	forms, err := u.forms.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range forms {
		switch f.Status {
		case entities.SimpleKYCPending, entities.SimpleKYCEmailVerified, entities.SimpleKYCUnderReview:
			stats.PendingSimpleKYC++
		}
	}

	investments, err := u.investments.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Investments = len(investments)
	for _, inv := range investments {
		if inv.Status == entities.InvestmentStatusPending {
			stats.PendingInvestments++
		}
	}

	return &stats, nil
}

// SendMessage notifies a user with a message written in the admin console
func (u *AdminUsecase) SendMessage(ctx context.Context, input *entities.AdminMessageInput) (*entities.Notification, error) {
	user, err := u.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrNotFound
	}
	return u.notifier.NotifyAdminMessage(ctx, user.ID, input.Message)
}
