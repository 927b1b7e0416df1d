package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/model/accounts"
)

const uniqueViolation = "23505"

// UsersStorage keeps accounts and password reset tokens in Postgres.
type UsersStorage struct {
	db *sql.DB
}

func NewUsersStorage(db *sql.DB) *UsersStorage {
	return &UsersStorage{db: db}
}

func (s *UsersStorage) CreateUser(ctx context.Context, email, passwordHash string) (accounts.Account, error) {
	query := psql.Insert("users").
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING id, email, password_hash")

	var account accounts.Account
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&account.ID, &account.Email, &account.PasswordHash)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return accounts.Account{}, accounts.ErrEmailTaken
	}
	if err != nil {
		return accounts.Account{}, errors.Wrap(err, "insert user")
	}
	return account, nil
}

func (s *UsersStorage) GetUserByEmail(ctx context.Context, email string) (accounts.Account, error) {
	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *UsersStorage) GetUserByID(ctx context.Context, id string) (accounts.Account, error) {
	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *UsersStorage) getUser(ctx context.Context, where sq.Eq) (accounts.Account, error) {
	query := psql.Select("id", "email", "password_hash").
		From("users").
		Where(where)

	var account accounts.Account
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&account.ID, &account.Email, &account.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return accounts.Account{}, accounts.ErrUserNotFound
	}
	if err != nil {
		return accounts.Account{}, errors.Wrap(err, "select user")
	}
	return account, nil
}

func (s *UsersStorage) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	res, err := psql.Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update password hash")
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return accounts.ErrUserNotFound
	}
	return nil
}

func (s *UsersStorage) SaveResetToken(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error {
	_, err := psql.Insert("password_resets").
		Columns("token_hash", "user_id", "expires_at").
		Values(tokenHash, userID, expiresAt).
		RunWith(s.db).
		ExecContext(ctx)
	return errors.Wrap(err, "insert reset token")
}

// ConsumeResetToken deletes the token and returns its user if it had not expired.
func (s *UsersStorage) ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	query, args, err := psql.Delete("password_resets").
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "build reset token query")
	}

	var userID string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", accounts.ErrInvalidResetToken
	}
	if err != nil {
		return "", errors.Wrap(err, "consume reset token")
	}
	return userID, nil
}
