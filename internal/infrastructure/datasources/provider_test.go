package datasources

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"glg-capital.backend/internal/config"
	"glg-capital.backend/internal/infrastructure/datasources/sqlite"
)

func memoryOpener(t *testing.T, calls *int32, delay time.Duration) Opener {
	t.Helper()
	return func(context.Context) (*gorm.DB, error) {
		n := atomic.AddInt32(calls, 1)
		time.Sleep(delay)
		return sqlite.NewConnection(fmt.Sprintf("file:%s_%d_%d?mode=memory&cache=shared", t.Name(), n, time.Now().UnixNano()), false)
	}
}

func TestProvider_ConcurrentColdStartOpensOnce(t *testing.T) {
	var calls int32
	p := NewProvider(memoryOpener(t, &calls, 20*time.Millisecond))
	t.Cleanup(func() { _ = p.Close() })

	const n = 16
	handles := make([]*gorm.DB, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := p.Get(context.Background())
			assert.NoError(t, err)
			handles[i] = db
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestProvider_FailureIsNotMemoised(t *testing.T) {
	attempts := 0
	p := NewProvider(func(context.Context) (*gorm.DB, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("disk busy")
		}
		return sqlite.NewConnection(fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano()), false)
	})
	t.Cleanup(func() { _ = p.Close() })

	_, err := p.Get(context.Background())
	require.Error(t, err)

	db, err := p.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Equal(t, 2, attempts)
}

func TestProvider_CloseThenReopen(t *testing.T) {
	var calls int32
	p := NewProvider(memoryOpener(t, &calls, 0))

	first, err := p.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	second, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.NoError(t, p.Close())
}

func TestOpenerFor(t *testing.T) {
	origSQLite, origPostgres := openSQLite, openPostgres
	t.Cleanup(func() {
		openSQLite = origSQLite
		openPostgres = origPostgres
	})

	var gotPath string
	openSQLite = func(path string, _ bool) (*gorm.DB, error) {
		gotPath = path
		return nil, errors.New("sqlite stub")
	}
	openPostgres = func(config.DatabaseConfig) (*gorm.DB, error) {
		return nil, errors.New("postgres stub")
	}

	open, err := OpenerFor(config.DatabaseConfig{Driver: config.DriverSQLite, Path: "./x.db"})
	require.NoError(t, err)
	_, err = open(context.Background())
	assert.EqualError(t, err, "sqlite stub")
	assert.Equal(t, "./x.db", gotPath)

	open, err = OpenerFor(config.DatabaseConfig{Driver: config.DriverPostgres})
	require.NoError(t, err)
	_, err = open(context.Background())
	assert.EqualError(t, err, "postgres stub")

	_, err = OpenerFor(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
