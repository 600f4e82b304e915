package repositories

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"glg-capital.backend/internal/domain/entities"
)

// KYCRecordRepository stores legacy document based KYC records.
type KYCRecordRepository interface {
	Create(ctx context.Context, record *entities.KYCRecord) (*entities.KYCRecord, error)
	GetByID(ctx context.Context, id string) (*entities.KYCRecord, error)
	// GetByUserID returns the most recent record of the user.
	GetByUserID(ctx context.Context, userID string) (*entities.KYCRecord, error)
	List(ctx context.Context) ([]*entities.KYCRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.KYCStatus) error
}

// SimpleKYCRepository stores onboarding forms. It never checks verification
// codes or their expiry; callers compare them before calling VerifyEmail.
type SimpleKYCRepository interface {
	Create(ctx context.Context, kyc *entities.SimpleKYC) (*entities.SimpleKYC, error)
	GetByID(ctx context.Context, id string) (*entities.SimpleKYC, error)
	GetByUserID(ctx context.Context, userID string) (*entities.SimpleKYC, error)
	List(ctx context.Context) ([]*entities.SimpleKYC, error)
	UpdateStatus(ctx context.Context, id string, status entities.SimpleKYCStatus, reviewedBy, rejectionReason null.String) error
	VerifyEmail(ctx context.Context, id string) error
	UpdateVerificationCode(ctx context.Context, id, code string, expiresAt time.Time) error
	ClearExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error)
}
