// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, the username-availability probe,
// and housekeeping of expired session rows.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secureconnect/internal/common"
	"github.com/dmitrijs2005/secureconnect/internal/logging"
	"github.com/dmitrijs2005/secureconnect/internal/server/auth"
	"github.com/dmitrijs2005/secureconnect/internal/server/config"
	"github.com/dmitrijs2005/secureconnect/internal/server/models"
	"github.com/dmitrijs2005/secureconnect/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is returned to the transport layer on successful login.
type LoginResult struct {
	Token    string
	Username string
}

// UserService provides the authentication flows:
//   - SignUp: validate policy, hash the password, create the user
//   - Login: verify credentials, mint a token, persist a session
//   - CheckUsername: availability probe for the signup form
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	logger                  logging.Logger
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		logger:                  l.With("module", "user_service"),
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// SignUp creates a new user after enforcing the account-creation policy.
//
// The Exists probe is advisory only; the users table's unique constraint
// is the authority on username uniqueness. A lost insert race surfaces to
// the caller as the same common.ErrorAlreadyExists as the probe, but is
// logged separately so the two paths stay distinguishable.
func (s *UserService) SignUp(ctx context.Context, username, password string) error {
	if err := ValidateCredentials(username, password); err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return common.ErrorAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrorInternal
	}

	user := &models.User{UserName: username, PasswordHash: string(hash)}
	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Warn(ctx, "signup lost uniqueness race", "username", username, "cause", "unique_violation")
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// Login verifies the supplied credentials and, on success, issues a signed
// token and persists a session row with the same validity window.
//
// An unknown username and a wrong password are deliberately
// indistinguishable: both return common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// Failed session writes surface immediately; retrying here could
	// double-insert a session.
	if err := s.repomanager.Sessions(s.db).Create(ctx, user.ID, token, s.sessionValidityDuration); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return &LoginResult{Token: token, Username: user.UserName}, nil
}

// CheckUsername reports whether the given username is already taken.
// It has no side effects and is safe to call repeatedly from the signup
// form's availability probe.
func (s *UserService) CheckUsername(ctx context.Context, username string) (bool, error) {
	return s.repomanager.Users(s.db).Exists(ctx, username)
}

// CleanupExpiredSessions purges session rows past their expiry and returns
// the number of rows removed. Called by the opt-in cleanup loop only;
// deleting a row never invalidates an outstanding token.
func (s *UserService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return s.repomanager.Sessions(s.db).DeleteExpired(ctx)
}
