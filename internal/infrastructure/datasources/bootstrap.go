package datasources

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"glg-capital.backend/internal/config"
	"glg-capital.backend/internal/domain/repositories"
	"glg-capital.backend/pkg/logger"
)

// Bootstrap seeds the admin account once. Existing users with the admin
// email are left untouched, including their password.
func Bootstrap(ctx context.Context, users repositories.UserRepository, cfg config.BootstrapConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("admin bootstrap requires an email and a password")
	}

	created, err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		logger.Info(ctx, "Bootstrap admin created", zap.String("email", cfg.AdminEmail))
	}
	return nil
}
