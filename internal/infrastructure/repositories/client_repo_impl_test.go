package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
)

func TestClientRepository_CreateAndRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "client@x.com")

	c, err := repo.Create(ctx, &entities.Client{
		UserID:      user.ID,
		CompanyName: null.StringFrom("GLG Holdings"),
		Country:     null.StringFrom("Italy"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "GLG Holdings", c.CompanyName.String)
	assert.False(t, c.TaxID.Valid)

	byID, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.UserID, byID.UserID)

	byUser, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, byUser.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestClientRepository_CreateRequiresUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)

	_, err := repo.Create(context.Background(), &entities.Client{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestClientRepository_CreateWrapsEngineError(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)

	_, err := repo.Create(context.Background(), &entities.Client{UserID: "no-such-user"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create client")
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestClientRepository_WriteNotVerified(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ghost-client@x.com")
	repo := NewClientRepository(db)
	hideRows(t, db)

	_, err := repo.Create(context.Background(), &entities.Client{UserID: user.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWriteNotVerified)
	assert.Contains(t, err.Error(), "failed to create client")
}

func TestClientRepository_UpdateAndMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "upd@x.com")

	c, err := repo.Create(ctx, &entities.Client{UserID: user.ID})
	require.NoError(t, err)

	c.City = null.StringFrom("Rome")
	c.PostalCode = null.StringFrom("00100")
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rome", got.City.String)
	assert.Equal(t, "00100", got.PostalCode.String)

	missing, err := repo.GetByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, repo.Update(ctx, &entities.Client{ID: "nope"}), domainerrors.ErrNotFound)
}

func TestClientRepository_Uninitialized(t *testing.T) {
	repo := NewClientRepository(nil)
	_, err := repo.Create(context.Background(), &entities.Client{UserID: "u"})
	assert.ErrorIs(t, err, domainerrors.ErrUninitialized)
	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrUninitialized)
}
