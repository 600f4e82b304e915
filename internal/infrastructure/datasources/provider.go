package datasources

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"glg-capital.backend/internal/config"
	"glg-capital.backend/internal/infrastructure/datasources/postgres"
	"glg-capital.backend/internal/infrastructure/datasources/sqlite"
)

// Opener opens a new database handle.
type Opener func(ctx context.Context) (*gorm.DB, error)

var (
	openSQLite   = sqlite.NewConnection
	openPostgres = postgres.NewConnection
)

// OpenerFor selects the store named by cfg.Driver.
func OpenerFor(cfg config.DatabaseConfig) (Opener, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return func(context.Context) (*gorm.DB, error) {
			return openSQLite(cfg.Path, cfg.Debug)
		}, nil
	case config.DriverPostgres:
		return func(context.Context) (*gorm.DB, error) {
			return openPostgres(cfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Provider hands out the single process-wide database handle, opening it on
// first use. Callers arriving during the first open wait for it and receive
// the same handle. A failed open is not remembered; the next Get retries.
type Provider struct {
	mu   sync.Mutex
	open Opener
	db   *gorm.DB
}

func NewProvider(open Opener) *Provider {
	return &Provider{open: open}
}

func (p *Provider) Get(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	db, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	p.db = db
	return db, nil
}

// Close releases the handle. A later Get opens a new one.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	p.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
