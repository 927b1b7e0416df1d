package accounts

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testConfig struct{}

func (testConfig) JWTSecret() string         { return "0123456789abcdef0123456789abcdef" }
func (testConfig) Issuer() string            { return "expense-tracker-test" }
func (testConfig) AccessTTL() time.Duration  { return time.Minute }
func (testConfig) RefreshTTL() time.Duration { return time.Hour }
func (testConfig) BcryptCost() int           { return bcrypt.MinCost }

type resetEntry struct {
	userID    string
	expiresAt time.Time
}

type memoryUsers struct {
	mu      sync.Mutex
	byID    map[string]Account
	resets  map[string]resetEntry
	counter int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[string]Account), resets: make(map[string]resetEntry)}
}

func (m *memoryUsers) CreateUser(_ context.Context, email, hash string) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Email == email {
			return Account{}, ErrEmailTaken
		}
	}
	m.counter++
	a := Account{ID: "user-" + strconv.Itoa(m.counter), Email: email, PasswordHash: hash}
	m.byID[a.ID] = a
	return a, nil
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return Account{}, ErrUserNotFound
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return Account{}, ErrUserNotFound
	}
	return a, nil
}

func (m *memoryUsers) UpdatePasswordHash(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	a.PasswordHash = hash
	m.byID[id] = a
	return nil
}

func (m *memoryUsers) SaveResetToken(_ context.Context, tokenHash, userID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets[tokenHash] = resetEntry{userID: userID, expiresAt: expiresAt}
	return nil
}

func (m *memoryUsers) ConsumeResetToken(_ context.Context, tokenHash string, now time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.resets[tokenHash]
	delete(m.resets, tokenHash)
	if !ok || !entry.expiresAt.After(now) {
		return "", ErrInvalidResetToken
	}
	return entry.userID, nil
}

func Test_OnSignUpAndSignIn_ShouldIssueValidTokens(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryUsers(), testConfig{})

	created, err := service.SignUp(ctx, " Me@Mail.Test ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "me@mail.test", created.User.Email)

	sess, err := service.SignIn(ctx, "me@mail.test", "secret1")
	require.NoError(t, err)

	userID, err := service.Authenticate(sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, userID)

	_, err = service.Authenticate(sess.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_OnSignUpTwice_ShouldRejectDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryUsers(), testConfig{})
	_, err := service.SignUp(ctx, "me@mail.test", "secret1")
	require.NoError(t, err)

	_, err = service.SignUp(ctx, "me@mail.test", "secret2")

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func Test_OnSignUpInvalidInput_ShouldFail(t *testing.T) {
	service := NewService(newMemoryUsers(), testConfig{})

	_, err := service.SignUp(context.Background(), "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.SignUp(context.Background(), "me@mail.test", "123")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func Test_OnWrongPassword_ShouldNotRevealWhichPartFailed(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryUsers(), testConfig{})
	_, err := service.SignUp(ctx, "me@mail.test", "secret1")
	require.NoError(t, err)

	_, err = service.SignIn(ctx, "me@mail.test", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)

	_, err = service.SignIn(ctx, "nobody@mail.test", "secret1")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func Test_OnRefresh_ShouldIssueNewSession(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryUsers(), testConfig{})
	created, err := service.SignUp(ctx, "me@mail.test", "secret1")
	require.NoError(t, err)

	refreshed, err := service.Refresh(ctx, created.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, refreshed.User.ID)
	assert.NotEqual(t, created.AccessToken, refreshed.AccessToken)

	_, err = service.Refresh(ctx, created.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_OnExpiredAccessToken_ShouldFailValidation(t *testing.T) {
	manager := NewTokenManager("0123456789abcdef0123456789abcdef", "issuer", time.Minute, time.Hour)
	issuedAt := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }
	access, _, expiresAt, err := manager.Issue("user-1", "me@mail.test")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Minute), expiresAt)

	manager.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = manager.ValidateAccess(access)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func Test_OnPasswordReset_ShouldAllowNewPasswordOnce(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUsers()
	service := NewService(users, testConfig{})
	created, err := service.SignUp(ctx, "me@mail.test", "secret1")
	require.NoError(t, err)

	token := "known-token"
	require.NoError(t, users.SaveResetToken(ctx, HashToken(token), created.User.ID, time.Now().Add(time.Hour)))

	require.NoError(t, service.ResetPassword(ctx, token, "secret2"))
	_, err = service.SignIn(ctx, "me@mail.test", "secret2")
	assert.NoError(t, err)

	err = service.ResetPassword(ctx, token, "secret3")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func Test_OnResetRequestForUnknownEmail_ShouldSucceedSilently(t *testing.T) {
	users := newMemoryUsers()
	service := NewService(users, testConfig{})

	err := service.RequestPasswordReset(context.Background(), "ghost@mail.test")

	require.NoError(t, err)
	assert.Empty(t, users.resets)
}

func Test_OnUpdatePassword_ShouldReplaceHash(t *testing.T) {
	ctx := context.Background()
	service := NewService(newMemoryUsers(), testConfig{})
	created, err := service.SignUp(ctx, "me@mail.test", "secret1")
	require.NoError(t, err)

	user, err := service.UpdatePassword(ctx, created.User.ID, "secret9")
	require.NoError(t, err)
	assert.Equal(t, "me@mail.test", user.Email)

	_, err = service.SignIn(ctx, "me@mail.test", "secret1")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}
