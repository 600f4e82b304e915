package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	"glg-capital.backend/internal/infrastructure/datasources"
	"glg-capital.backend/internal/infrastructure/datasources/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := sqlite.NewConnection(dsn, false)
	require.NoError(t, err, "open sqlite")
	require.NoError(t, datasources.Migrate(db), "migrate")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()
	u, err := NewUserRepository(db).Create(context.Background(), &entities.CreateUserInput{
		Email:     email,
		Password:  "plain-password",
		FirstName: null.StringFrom("Test"),
		Role:      entities.UserRoleUser,
	})
	require.NoError(t, err)
	return u
}

// useClock makes nowFunc return start and advance by one second per call.
func useClock(t *testing.T, start time.Time) {
	t.Helper()
	orig := nowFunc
	var mu sync.Mutex
	current := start.UTC()
	nowFunc = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
	t.Cleanup(func() { nowFunc = orig })
}

// hideRows makes every query on db come back empty, simulating a reread
// that does not see the row just written.
func hideRows(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:hide_rows", func(tx *gorm.DB) {
		tx.Where("1 = 0")
	}))
}
