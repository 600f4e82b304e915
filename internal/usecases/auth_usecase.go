package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"glg-capital.backend/internal/domain/entities"
	domainerrors "glg-capital.backend/internal/domain/errors"
	"glg-capital.backend/internal/domain/repositories"
	"glg-capital.backend/pkg/crypto"
	"glg-capital.backend/pkg/jwt"
	"glg-capital.backend/pkg/redis"
)

// SessionStore keeps server side sessions for cookie-less clients
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var (
	generateSessionID = crypto.GenerateSessionID
	hashPassword      = crypto.HashPassword
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	clientRepo   repositories.ClientRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
	sessionStore SessionStore
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessionStore may be nil, in
// which case logins always return a token pair.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	sessionStore SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		uow:          uow,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Register creates a user together with its client row
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrAlreadyExists
	}

	var user *entities.User
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		created, err := u.userRepo.Create(txCtx, &entities.CreateUserInput{
			Email:     email,
			Password:  input.Password,
			FirstName: optional(input.FirstName),
			LastName:  optional(input.LastName),
			Phone:     optional(input.Phone),
			Role:      entities.UserRoleUser,
		})
		if err != nil {
			return err
		}

		if _, err := u.clientRepo.Create(txCtx, &entities.Client{
			UserID:      created.ID,
			CompanyName: optional(input.CompanyName),
			Country:     optional(input.Country),
		}); err != nil {
			return err
		}

		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns tokens, or a session id when
// the caller asked for one and a session store is configured.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessionStore != nil {
		sessionID, err := generateSessionID()
		if err != nil {
			return nil, err
		}
		err = u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
			UserID:       user.ID,
			Email:        user.Email,
			Role:         string(user.Role),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, u.sessionTTL)
		if err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Logout drops a server side session. Token based logins have nothing to revoke.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" || u.sessionStore == nil {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// the account may have been removed since the token was issued
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

// UpdateProfile replaces the editable profile fields of the user
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID string, input *entities.UpdateProfileInput) (*entities.User, error) {
	err := u.userRepo.UpdateProfile(ctx, userID, optional(input.FirstName), optional(input.LastName), optional(input.Phone))
	if err != nil {
		return nil, err
	}
	return u.GetUserByID(ctx, userID)
}

// ChangePassword verifies the current password and stores a hash of the new one
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID string, input *entities.ChangePasswordInput) error {
	user, err := u.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}
	if input.CurrentPassword == input.NewPassword {
		return domainerrors.NewError("new password must differ from the current one", domainerrors.ErrInvalidInput)
	}

	hash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, hash)
}

func optional(s string) null.String {
	s = strings.TrimSpace(s)
	return null.NewString(s, s != "")
}
