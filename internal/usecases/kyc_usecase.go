package usecases

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/domain/repositories"
	"glg-capital.backend/pkg/crypto"
	"glg-capital.backend/pkg/logger"
	"glg-capital.backend/pkg/ratelimit"
)

var (
	generateVerificationCode = crypto.GenerateVerificationCode
	kycNow                   = time.Now
)

// CodeSender delivers an e-mail verification code to an applicant
type CodeSender interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

// LogCodeSender writes codes to the process log. It stands in for an
// e-mail provider in development.
type LogCodeSender struct{}

func (LogCodeSender) SendVerificationCode(ctx context.Context, email, code string) error {
	logger.Info(ctx, "KYC verification code issued", zap.String("email", email), zap.String("code", code))
	return nil
}

// KYCUsecase runs both KYC flows: document records reviewed by an admin,
// and the onboarding form with its e-mail verification step.
type KYCUsecase struct {
	records  repositories.KYCRecordRepository
	forms    repositories.SimpleKYCRepository
	notifier *NotificationService
	uow      repositories.UnitOfWork
	limiter  ratelimit.AttemptLimiter
	sender   CodeSender
	codeTTL  time.Duration
}

func NewKYCUsecase(
	records repositories.KYCRecordRepository,
	forms repositories.SimpleKYCRepository,
	notifier *NotificationService,
	uow repositories.UnitOfWork,
	limiter ratelimit.AttemptLimiter,
	sender CodeSender,
	codeTTL time.Duration,
) *KYCUsecase {
	if sender == nil {
		sender = LogCodeSender{}
	}
	return &KYCUsecase{
		records:  records,
		forms:    forms,
		notifier: notifier,
		uow:      uow,
		limiter:  limiter,
		sender:   sender,
		codeTTL:  codeTTL,
	}
}

// SubmitRecord stores a document based KYC submission as pending
func (u *KYCUsecase) SubmitRecord(ctx context.Context, userID string, input *entities.SubmitKYCRecordInput) (*entities.KYCRecord, error) {
	if input.DocumentType == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return u.records.Create(ctx, &entities.KYCRecord{
		UserID:           userID,
		Status:           entities.KYCStatusPending,
		DocumentType:     optional(input.DocumentType),
		DocumentURL:      optional(input.DocumentURL),
		VerificationData: input.VerificationData,
	})
}

// ReviewRecord sets the status of a record and notifies its owner.
// Both writes commit together.
func (u *KYCUsecase) ReviewRecord(ctx context.Context, id string, status entities.KYCStatus) (*entities.KYCRecord, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	record, err := u.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.records.UpdateStatus(txCtx, id, status); err != nil {
			return err
		}
		_, err := u.notifier.NotifyKYCStatusUpdate(txCtx, record.UserID, string(status))
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.GetRecord(ctx, id)
}

// GetRecord returns a KYC record by id
func (u *KYCUsecase) GetRecord(ctx context.Context, id string) (*entities.KYCRecord, error) {
	record, err := u.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domainerrors.ErrNotFound
	}
	return record, nil
}

// GetRecordForUser returns the latest KYC record of the user
func (u *KYCUsecase) GetRecordForUser(ctx context.Context, userID string) (*entities.KYCRecord, error) {
	record, err := u.records.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domainerrors.ErrNotFound
	}
	return record, nil
}

func (u *KYCUsecase) ListRecords(ctx context.Context) ([]*entities.KYCRecord, error) {
	return u.records.List(ctx)
}

// Submit stores the onboarding form and sends the first verification code
func (u *KYCUsecase) Submit(ctx context.Context, userID string, input *entities.SubmitSimpleKYCInput) (*entities.SimpleKYC, error) {
	code, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}

	form := input.ToEntity(userID)
	form.EmailVerificationCode = null.StringFrom(code)
	form.EmailVerificationExpires = null.TimeFrom(kycNow().Add(u.codeTTL))

	created, err := u.forms.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	if err := u.sender.SendVerificationCode(ctx, created.Email, code); err != nil {
		// the form is stored; the applicant can ask for a new code
		logger.Warn(ctx, "failed to send verification code", zap.String("kyc_id", created.ID), zap.Error(err))
	}
	return created, nil
}

// ResendCode replaces the verification code of an unverified form
func (u *KYCUsecase) ResendCode(ctx context.Context, userID, id string) error {
	form, err := u.ownedForm(ctx, userID, id)
	if err != nil {
		return err
	}
	if form.EmailVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}
	if err := u.forms.UpdateVerificationCode(ctx, id, code, kycNow().Add(u.codeTTL)); err != nil {
		return err
	}
	return u.sender.SendVerificationCode(ctx, form.Email, code)
}

// VerifyEmail checks code against the form's current code and marks the
// e-mail verified. Attempts per form are bounded by the limiter.
func (u *KYCUsecase) VerifyEmail(ctx context.Context, userID, id, code string) (*entities.SimpleKYC, error) {
	form, err := u.ownedForm(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := kycNow()
	key := "kyc-verify:" + id
	if u.limiter != nil {
		allowed, retryAfter, err := u.limiter.Allow(ctx, key, now)
		if err != nil {
			return nil, err
		}
		if !allowed {
			logger.Warn(ctx, "verification attempts exhausted", zap.String("kyc_id", id), zap.Duration("retry_after", retryAfter))
			return nil, domainerrors.ErrTooManyAttempts
		}
	}

	if form.EmailVerified {
		return nil, domainerrors.ErrEmailAlreadyVerified
	}
	if !form.EmailVerificationCode.Valid || !form.EmailVerificationExpires.Valid || now.After(form.EmailVerificationExpires.Time) {
		return nil, domainerrors.ErrVerificationCodeExpired
	}
	if !crypto.CodesEqual(form.EmailVerificationCode.String, code) {
		return nil, domainerrors.ErrVerificationCodeInvalid
	}

	if err := u.forms.VerifyEmail(ctx, id); err != nil {
		return nil, err
	}
	if r, ok := u.limiter.(ratelimit.Resetter); ok {
		if err := r.Reset(ctx, key); err != nil {
			logger.Warn(ctx, "failed to reset verification attempts", zap.String("kyc_id", id), zap.Error(err))
		}
	}

	return u.GetForm(ctx, id)
}

// Review records an admin decision on a form and notifies its owner.
// Both writes commit together.
func (u *KYCUsecase) Review(ctx context.Context, id, reviewerID string, input *entities.ReviewKYCInput) (*entities.SimpleKYC, error) {
	status := entities.SimpleKYCStatus(input.Status)
	if !status.Reviewable() {
		return nil, domainerrors.ErrInvalidInput
	}

	form, err := u.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}

	reason := null.String{}
	if status == entities.SimpleKYCRejected {
		reason = optional(input.RejectionReason)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.forms.UpdateStatus(txCtx, id, status, optional(reviewerID), reason); err != nil {
			return err
		}
		_, err := u.notifier.NotifyKYCStatusUpdate(txCtx, form.UserID, string(status))
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.GetForm(ctx, id)
}

// GetForm returns an onboarding form by id
func (u *KYCUsecase) GetForm(ctx context.Context, id string) (*entities.SimpleKYC, error) {
	form, err := u.forms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, domainerrors.ErrNotFound
	}
	return form, nil
}

// GetFormForUser returns the latest onboarding form of the user
func (u *KYCUsecase) GetFormForUser(ctx context.Context, userID string) (*entities.SimpleKYC, error) {
	form, err := u.forms.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, domainerrors.ErrNotFound
	}
	return form, nil
}

func (u *KYCUsecase) ListForms(ctx context.Context) ([]*entities.SimpleKYC, error) {
	return u.forms.List(ctx)
}

func (u *KYCUsecase) ownedForm(ctx context.Context, userID, id string) (*entities.SimpleKYC, error) {
	form, err := u.GetForm(ctx, id)
	if err != nil {
		return nil, err
	}
	if form.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return form, nil
}
