package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/model/accounts"
	"max.ks1230/expense-tracker/internal/model/kv"
)

const (
	usersKey  = "table:users"
	resetsKey = "table:password_resets"
)

type storedAccount struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

type storedReset struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LocalUsers keeps accounts in the local key-value store, for running the gateway
// without Postgres.
type LocalUsers struct {
	users  *kv.Value[[]storedAccount]
	resets *kv.Value[map[string]storedReset]
}

func NewLocalUsers(ctx context.Context, store kv.Store) *LocalUsers {
	return &LocalUsers{
		users:  kv.New(ctx, store, usersKey, []storedAccount{}),
		resets: kv.New(ctx, store, resetsKey, map[string]storedReset{}),
	}
}

func (s *LocalUsers) CreateUser(ctx context.Context, email, passwordHash string) (accounts.Account, error) {
	if err := s.users.WaitLoaded(ctx); err != nil {
		return accounts.Account{}, errors.Wrap(err, "wait for users")
	}
	created := storedAccount{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash}
	taken := false
	err := s.users.Update(ctx, func(list []storedAccount) []storedAccount {
		for _, a := range list {
			if a.Email == email {
				taken = true
				return list
			}
		}
		next := make([]storedAccount, 0, len(list)+1)
		next = append(next, list...)
		return append(next, created)
	})
	if taken {
		return accounts.Account{}, accounts.ErrEmailTaken
	}
	if err != nil {
		return accounts.Account{}, errors.Wrap(err, "save user")
	}
	return accounts.Account(created), nil
}

func (s *LocalUsers) GetUserByEmail(ctx context.Context, email string) (accounts.Account, error) {
	return s.find(ctx, func(a storedAccount) bool { return a.Email == email })
}

func (s *LocalUsers) GetUserByID(ctx context.Context, id string) (accounts.Account, error) {
	return s.find(ctx, func(a storedAccount) bool { return a.ID == id })
}

func (s *LocalUsers) find(ctx context.Context, match func(storedAccount) bool) (accounts.Account, error) {
	if err := s.users.WaitLoaded(ctx); err != nil {
		return accounts.Account{}, errors.Wrap(err, "wait for users")
	}
	for _, a := range s.users.Get() {
		if match(a) {
			return accounts.Account(a), nil
		}
	}
	return accounts.Account{}, accounts.ErrUserNotFound
}

func (s *LocalUsers) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	if err := s.users.WaitLoaded(ctx); err != nil {
		return errors.Wrap(err, "wait for users")
	}
	found := false
	err := s.users.Update(ctx, func(list []storedAccount) []storedAccount {
		next := make([]storedAccount, len(list))
		copy(next, list)
		for i := range next {
			if next[i].ID == id {
				next[i].PasswordHash = passwordHash
				found = true
			}
		}
		return next
	})
	if !found {
		return accounts.ErrUserNotFound
	}
	return errors.Wrap(err, "save user")
}

func (s *LocalUsers) SaveResetToken(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error {
	if err := s.resets.WaitLoaded(ctx); err != nil {
		return errors.Wrap(err, "wait for reset tokens")
	}
	err := s.resets.Update(ctx, func(m map[string]storedReset) map[string]storedReset {
		next := make(map[string]storedReset, len(m)+1)
		for k, v := range m {
			next[k] = v
		}
		next[tokenHash] = storedReset{UserID: userID, ExpiresAt: expiresAt}
		return next
	})
	return errors.Wrap(err, "save reset token")
}

func (s *LocalUsers) ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	if err := s.resets.WaitLoaded(ctx); err != nil {
		return "", errors.Wrap(err, "wait for reset tokens")
	}
	var entry storedReset
	found := false
	err := s.resets.Update(ctx, func(m map[string]storedReset) map[string]storedReset {
		next := make(map[string]storedReset, len(m))
		for k, v := range m {
			if k == tokenHash {
				entry, found = v, true
				continue
			}
			next[k] = v
		}
		return next
	})
	if err != nil {
		return "", errors.Wrap(err, "consume reset token")
	}
	if !found || !entry.ExpiresAt.After(now) {
		return "", accounts.ErrInvalidResetToken
	}
	return entry.UserID, nil
}
