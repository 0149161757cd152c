package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// AuthService orchestrates credential lookup, password verification, and
// token issuance.
type AuthService interface {
	// Register creates a new user and immediately performs the login flow
	// with the same credentials, so registration is observably equivalent to
	// "create, then log in". Returns store.ErrEmailExists if the email is
	// already taken; in that case nothing is written.
	Register(ctx context.Context, email, displayName, password string) (string, *domain.User, error)

	// Login authenticates the credentials and returns a signed session
	// token. An unknown email and a wrong password both return
	// ErrInvalidCredentials. Login writes nothing.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// CurrentUser resolves the full user record for an authenticated
	// principal's user ID.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	db               *sql.DB
	logger           *slog.Logger
}

var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	db *sql.DB,
	log *slog.Logger,
) *AuthServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &AuthServiceImpl{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		db:               db,
		logger:           log.With("component", "auth_service"),
	}
}

// Register implements AuthService.Register.
// The insert runs in a transaction; the unique index on users.email decides
// races between concurrent registrations, so exactly one wins and the others
// observe store.ErrEmailExists.
func (s *AuthServiceImpl) Register(
	ctx context.Context,
	email, displayName, password string,
) (string, *domain.User, error) {
	user, err := domain.NewUser(email, displayName, password)
	if err != nil {
		return "", nil, err
	}

	hashed, err := s.passwordVerifier.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("registration with existing email", "user_id", user.ID)
		} else {
			s.logger.Error("failed to create user", "error", err, "user_id", user.ID)
		}
		return "", nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"display_name", user.DisplayName)

	// Auto-login with the credentials just registered.
	return s.Login(ctx, email, password)
}

// Login implements AuthService.Login.
func (s *AuthServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (string, *domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login with unknown email")
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login with wrong password", "user_id", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, user, nil
}

// CurrentUser implements AuthService.CurrentUser.
func (s *AuthServiceImpl) CurrentUser(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Warn("principal references missing user", "user_id", userID)
		}
		return nil, err
	}
	return user, nil
}
