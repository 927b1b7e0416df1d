// Package accounts is the identity side of the gateway: password accounts, JWT
// sessions and password resets.
package accounts

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	minPasswordLength = 6
	resetTokenTTL     = time.Hour
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrInvalidEmail      = errors.New("email is invalid")
	ErrWeakPassword      = errors.New("password is too short")
	ErrWrongCredentials  = errors.New("wrong email or password")
	ErrInvalidResetToken = errors.New("reset token is invalid or expired")
)

type Account struct {
	ID           string
	Email        string
	PasswordHash string
}

// UserStore persists accounts and password reset tokens.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (Account, error)
	GetUserByEmail(ctx context.Context, email string) (Account, error)
	GetUserByID(ctx context.Context, id string) (Account, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	SaveResetToken(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) (string, error)
}

type config interface {
	JWTSecret() string
	Issuer() string
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
	BcryptCost() int
}

type Service struct {
	users  UserStore
	tokens *TokenManager
	cost   int
	now    func() time.Time
}

func NewService(users UserStore, config config) *Service {
	cost := config.BcryptCost()
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		users:  users,
		tokens: NewTokenManager(config.JWTSecret(), config.Issuer(), config.AccessTTL(), config.RefreshTTL()),
		cost:   cost,
		now:    time.Now,
	}
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	account, err := s.users.CreateUser(ctx, email, string(hash))
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	logger.Info("user signed up", zap.String("user", account.ID))
	return s.issue(account)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrWrongCredentials
	}
	account, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrWrongCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}
	return s.issue(account)
}

// Refresh exchanges a refresh token for a new session.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*session.Session, error) {
	claims, err := s.tokens.validateRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	account, err := s.users.GetUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return s.issue(account)
}

// Authenticate returns the user id of a valid access token.
func (s *Service) Authenticate(accessToken string) (string, error) {
	return s.tokens.ValidateAccess(accessToken)
}

func (s *Service) User(ctx context.Context, userID string) (*session.User, error) {
	account, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return &session.User{ID: account.ID, Email: account.Email}, nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID, password string) (*session.User, error) {
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	if err = s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return nil, errors.Wrap(err, "update password")
	}
	return s.User(ctx, userID)
}

// RequestPasswordReset stores a reset token for the email. The token would be
// mailed; here it is only logged. Unknown emails succeed silently.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	account, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		logger.Info("password reset for unknown email")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "get user")
	}
	token := randomToken(24)
	if err = s.users.SaveResetToken(ctx, HashToken(token), account.ID, s.now().Add(resetTokenTTL)); err != nil {
		return errors.Wrap(err, "save reset token")
	}
	logger.Debug("password reset requested", zap.String("user", account.ID), zap.String("token", token))
	return nil
}

// ResetPassword sets a new password using a token from RequestPasswordReset.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	userID, err := s.users.ConsumeResetToken(ctx, HashToken(token), s.now())
	if err != nil {
		return ErrInvalidResetToken
	}
	_, err = s.UpdatePassword(ctx, userID, password)
	return err
}

func (s *Service) issue(account Account) (*session.Session, error) {
	access, refresh, expiresAt, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, err
	}
	return &session.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         &session.User{ID: account.ID, Email: account.Email},
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}
