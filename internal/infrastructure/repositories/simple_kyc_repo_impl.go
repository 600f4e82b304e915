package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/infrastructure/models"
)

// SimpleKYCRepository implements the onboarding KYC store
type SimpleKYCRepository struct {
	db *gorm.DB
}

func NewSimpleKYCRepository(db *gorm.DB) *SimpleKYCRepository {
	return &SimpleKYCRepository{db: db}
}

// Create stores the form as pending and unverified, whatever the input says.
// A verification code already set on kyc is stored with it.
func (r *SimpleKYCRepository) Create(ctx context.Context, kyc *entities.SimpleKYC) (*entities.SimpleKYC, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	m := &models.SimpleKYC{
		ID:                       newID(),
		UserID:                   kyc.UserID,
		FirstName:                kyc.FirstName,
		LastName:                 kyc.LastName,
		Email:                    kyc.Email,
		Phone:                    kyc.Phone,
		Country:                  kyc.Country,
		City:                     kyc.City,
		Address:                  kyc.Address,
		DateOfBirth:              kyc.DateOfBirth,
		Nationality:              kyc.Nationality,
		EmploymentStatus:         kyc.EmploymentStatus,
		AnnualIncome:             kyc.AnnualIncome,
		SourceOfFunds:            kyc.SourceOfFunds,
		InvestmentExperience:     kyc.InvestmentExperience,
		RiskTolerance:            kyc.RiskTolerance,
		InvestmentGoals:          encodeGoals(kyc.InvestmentGoals),
		Status:                   string(entities.SimpleKYCPending),
		EmailVerified:            false,
		EmailVerificationCode:    kyc.EmailVerificationCode,
		EmailVerificationExpires: utcPtr(kyc.EmailVerificationExpires),
		SubmittedAt:              now,
		Notes:                    kyc.Notes,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}

	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, &domainerrors.WriteVerificationError{Entity: "simple_kyc", ID: m.ID}
	}
	return created, nil
}

func (r *SimpleKYCRepository) GetByID(ctx context.Context, id string) (*entities.SimpleKYC, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByUserID returns the latest submission of the user
func (r *SimpleKYCRepository) GetByUserID(ctx context.Context, userID string) (*entities.SimpleKYC, error) {
	return r.getBy(ctx, "user_id = ?", userID)
}

func (r *SimpleKYCRepository) getBy(ctx context.Context, query string, arg interface{}) (*entities.SimpleKYC, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var m models.SimpleKYC
	if err := db.Where(query, arg).Order("submitted_at DESC").Order("id DESC").Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toSimpleKYCEntity(&m), nil
}

func (r *SimpleKYCRepository) List(ctx context.Context) ([]*entities.SimpleKYC, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return nil, err
	}
	var rows []models.SimpleKYC
	if err := db.Order("submitted_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.SimpleKYC, 0, len(rows))
	for i := range rows {
		items = append(items, toSimpleKYCEntity(&rows[i]))
	}
	return items, nil
}

// UpdateStatus records a review decision; status and review metadata are
// written by the same statement.
func (r *SimpleKYCRepository) UpdateStatus(ctx context.Context, id string, status entities.SimpleKYCStatus, reviewedBy, rejectionReason null.String) error {
	now := nowFunc()
	return r.update(ctx, id, map[string]interface{}{
		"status":           string(status),
		"reviewed_at":      now,
		"reviewed_by":      reviewedBy,
		"rejection_reason": rejectionReason,
		"updated_at":       now,
	})
}

// VerifyEmail marks the e-mail verified and burns the code. It does not
// compare codes.
func (r *SimpleKYCRepository) VerifyEmail(ctx context.Context, id string) error {
	return r.update(ctx, id, map[string]interface{}{
		"email_verified":             true,
		"status":                     string(entities.SimpleKYCEmailVerified),
		"email_verification_code":    nil,
		"email_verification_expires": nil,
		"updated_at":                 nowFunc(),
	})
}

// UpdateVerificationCode replaces the one-time code and its expiry.
func (r *SimpleKYCRepository) UpdateVerificationCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	return r.update(ctx, id, map[string]interface{}{
		"email_verification_code":    code,
		"email_verification_expires": expiresAt.UTC(),
		"updated_at":                 nowFunc(),
	})
}

// ClearExpiredVerificationCodes drops codes of unverified forms that expired
// before now. The forms themselves are kept and updated_at is left alone.
func (r *SimpleKYCRepository) ClearExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error) {
	db, err := conn(ctx, r.db)
	if err != nil {
		return 0, err
	}
	result := db.Model(&models.SimpleKYC{}).
		Where("email_verified = ? AND email_verification_code IS NOT NULL AND email_verification_expires < ?", false, now.UTC()).
		UpdateColumns(map[string]interface{}{
			"email_verification_code":    nil,
			"email_verification_expires": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *SimpleKYCRepository) update(ctx context.Context, id string, updates map[string]interface{}) error {
	db, err := conn(ctx, r.db)
	if err != nil {
		return err
	}
	result := db.Model(&models.SimpleKYC{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toSimpleKYCEntity(m *models.SimpleKYC) *entities.SimpleKYC {
	return &entities.SimpleKYC{
		ID:                       m.ID,
		UserID:                   m.UserID,
		FirstName:                m.FirstName,
		LastName:                 m.LastName,
		Email:                    m.Email,
		Phone:                    m.Phone,
		Country:                  m.Country,
		City:                     m.City,
		Address:                  m.Address,
		DateOfBirth:              m.DateOfBirth,
		Nationality:              m.Nationality,
		EmploymentStatus:         m.EmploymentStatus,
		AnnualIncome:             m.AnnualIncome,
		SourceOfFunds:            m.SourceOfFunds,
		InvestmentExperience:     m.InvestmentExperience,
		RiskTolerance:            m.RiskTolerance,
		InvestmentGoals:          decodeGoals(m.InvestmentGoals),
		Status:                   entities.SimpleKYCStatus(m.Status),
		EmailVerified:            m.EmailVerified,
		EmailVerificationCode:    m.EmailVerificationCode,
		EmailVerificationExpires: timeFromPtr(m.EmailVerificationExpires),
		SubmittedAt:              m.SubmittedAt,
		ReviewedAt:               timeFromPtr(m.ReviewedAt),
		ReviewedBy:               m.ReviewedBy,
		RejectionReason:          m.RejectionReason,
		Notes:                    m.Notes,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}
