package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/usecases"
)

type adminDeps struct {
	users         *MockUserRepository
	clients       *MockClientRepository
	records       *MockKYCRecordRepository
	forms         *MockSimpleKYCRepository
	investments   *MockInvestmentRepository
	notifications *MockNotificationRepository
}

func newAdminUsecaseForTest() (*usecases.AdminUsecase, *adminDeps) {
	d := &adminDeps{
		users:         new(MockUserRepository),
		clients:       new(MockClientRepository),
		records:       new(MockKYCRecordRepository),
		forms:         new(MockSimpleKYCRepository),
		investments:   new(MockInvestmentRepository),
		notifications: new(MockNotificationRepository),
	}
	uc := usecases.NewAdminUsecase(d.users, d.clients, d.records, d.forms, d.investments, usecases.NewNotificationService(d.notifications))
	return uc, d
}

func TestAdminUsecase_Stats(t *testing.T) {
	ctx := context.Background()
	uc, d := newAdminUsecaseForTest()

	d.users.On("Count", ctx).Return(int64(4), nil).Once()
	d.clients.On("List", ctx).Return([]*entities.Client{{ID: "c-1"}, {ID: "c-2"}}, nil).Once()
	d.records.On("List", ctx).Return([]*entities.KYCRecord{
		{Status: entities.KYCStatusPending},
		{Status: entities.KYCStatusApproved},
	}, nil).Once()
	d.forms.On("List", ctx).Return([]*entities.SimpleKYC{
		{Status: entities.SimpleKYCPending},
		{Status: entities.SimpleKYCEmailVerified},
		{Status: entities.SimpleKYCUnderReview},
		{Status: entities.SimpleKYCRejected},
	}, nil).Once()
	d.investments.On("List", ctx).Return([]*entities.Investment{
		{Status: entities.InvestmentStatusPending},
		{Status: entities.InvestmentStatusActive},
		{Status: entities.InvestmentStatusCompleted},
	}, nil).Once()

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.Stats{
		Users:              4,
		Clients:            2,
		PendingKYC:         1,
		PendingSimpleKYC:   3,
		Investments:        3,
		PendingInvestments: 1,
	}, *stats)
}

func TestAdminUsecase_StatsStopsOnError(t *testing.T) {
	ctx := context.Background()
	uc, d := newAdminUsecaseForTest()

	d.users.On("Count", ctx).Return(int64(1), nil).Once()
	d.clients.On("List", ctx).Return(nil, errors.New("boom")).Once()

	_, err := uc.Stats(ctx)
	assert.EqualError(t, err, "boom")
	d.records.AssertNotCalled(t, "List", mock.Anything)
}

func TestAdminUsecase_SendMessage(t *testing.T) {
	ctx := context.Background()
	uc, d := newAdminUsecaseForTest()

	d.users.On("GetByID", ctx, "ghost").Return(nil, nil).Once()
	_, err := uc.SendMessage(ctx, &entities.AdminMessageInput{UserID: "ghost", Message: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	d.users.On("GetByID", ctx, "u-1").Return(&entities.User{ID: "u-1"}, nil).Once()
	d.notifications.On("Create", ctx, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == "u-1" && n.Type == entities.NotificationTypeAdminMessage && n.Message == "hi"
	})).Return(&entities.Notification{ID: "n-1"}, nil).Once()

	n, err := uc.SendMessage(ctx, &entities.AdminMessageInput{UserID: "u-1", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "n-1", n.ID)
}

func TestClientUsecase_SaveForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates on first save", func(t *testing.T) {
		repo := new(MockClientRepository)
		uc := usecases.NewClientUsecase(repo)

		repo.On("GetByUserID", ctx, "u-1").Return(nil, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(c *entities.Client) bool {
			return c.UserID == "u-1" && c.City == null.StringFrom("Milan") && !c.TaxID.Valid
		})).Return(&entities.Client{ID: "c-1", UserID: "u-1"}, nil).Once()

		c, err := uc.SaveForUser(ctx, "u-1", &entities.ClientInput{City: "Milan"})
		require.NoError(t, err)
		assert.Equal(t, "c-1", c.ID)
	})

	t.Run("updates existing row", func(t *testing.T) {
		repo := new(MockClientRepository)
		uc := usecases.NewClientUsecase(repo)

		repo.On("GetByUserID", ctx, "u-1").Return(&entities.Client{ID: "c-1", UserID: "u-1", City: null.StringFrom("Rome")}, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(c *entities.Client) bool {
			return c.ID == "c-1" && c.City == null.StringFrom("Milan")
		})).Return(nil).Once()
		repo.On("GetByUserID", ctx, "u-1").Return(&entities.Client{ID: "c-1", City: null.StringFrom("Milan")}, nil).Once()

		c, err := uc.SaveForUser(ctx, "u-1", &entities.ClientInput{City: "Milan"})
		require.NoError(t, err)
		assert.Equal(t, "Milan", c.City.String)
		repo.AssertExpectations(t)
	})
}

func TestClientUsecase_Reads(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	uc := usecases.NewClientUsecase(repo)

	repo.On("GetByUserID", ctx, "u-1").Return(nil, nil).Once()
	_, err := uc.GetForUser(ctx, "u-1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	repo.On("GetByID", ctx, "c-9").Return(nil, nil).Once()
	_, err = uc.Get(ctx, "c-9")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	repo.On("List", ctx).Return([]*entities.Client{{ID: "c-1"}}, nil).Once()
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
