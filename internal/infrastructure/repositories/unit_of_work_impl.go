package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	domainRepos "glg-capital.backend/internal/domain/repositories"
	domainerrors "glg-capital.backend/internal/domain/errors"
)

type contextKey string

const (
	txKey contextKey = "tx_db"
)

// UnitOfWorkImpl implements UnitOfWork using GORM
type UnitOfWorkImpl struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new UnitOfWork
func NewUnitOfWork(db *gorm.DB) domainRepos.UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

// Do executes fn inside a transaction. A nested Do joins the outer transaction.
func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return fn(ctx)
	}
	if u.db == nil {
		return domainerrors.ErrUninitialized
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDB returns the transaction bound to ctx, or the fallback handle.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

// conn is what every repository method starts with: the handle to use for
// this call, or ErrUninitialized before any query is attempted.
func conn(ctx context.Context, fallback *gorm.DB) (*gorm.DB, error) {
	db := GetDB(ctx, fallback)
	if db == nil {
		return nil, domainerrors.ErrUninitialized
	}
	return db.WithContext(ctx), nil
}
