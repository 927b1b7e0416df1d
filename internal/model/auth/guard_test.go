package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/model/kv"
)

type mockProvider struct {
	mock.Mock

	mu       sync.Mutex
	listener session.Listener
}

func (m *mockProvider) GetSession(ctx context.Context) (*session.Session, error) {
	args := m.Called(ctx)
	sess, _ := args.Get(0).(*session.Session)
	return sess, args.Error(1)
}

func (m *mockProvider) OnAuthStateChange(fn session.Listener) func() {
	m.Called()
	m.mu.Lock()
	m.listener = fn
	m.mu.Unlock()
	return func() {}
}

func (m *mockProvider) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	args := m.Called(ctx, email, password)
	sess, _ := args.Get(0).(*session.Session)
	return sess, args.Error(1)
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	args := m.Called(ctx, email, password)
	sess, _ := args.Get(0).(*session.Session)
	return sess, args.Error(1)
}

func (m *mockProvider) SignOut(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockProvider) UpdatePassword(ctx context.Context, password string) (*session.User, error) {
	args := m.Called(ctx, password)
	user, _ := args.Get(0).(*session.User)
	return user, args.Error(1)
}

func (m *mockProvider) ResetPasswordForEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockProvider) fire(event session.Event, sess *session.Session) {
	m.mu.Lock()
	l := m.listener
	m.mu.Unlock()
	l(event, sess)
}

type recordingBootstrapper struct {
	mu    sync.Mutex
	users []string
	err   error
}

func (b *recordingBootstrapper) EnsureForUser(_ context.Context, userID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users = append(b.users, userID)
	return b.err == nil, b.err
}

func (b *recordingBootstrapper) calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.users...)
}

func signedIn(id string) *session.Session {
	return &session.Session{AccessToken: "token", User: &session.User{ID: id, Email: id + "@mail.test"}}
}

func Test_OnInitAuthTwice_ShouldFetchAndSubscribeOnce(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(signedIn("u1"), nil).Once()
	provider.On("OnAuthStateChange").Return().Once()
	categories := &recordingBootstrapper{}
	guard := NewGuard(provider, categories)

	guard.InitAuth(context.Background())
	guard.InitAuth(context.Background())
	guard.WaitBootstrap()

	provider.AssertNumberOfCalls(t, "GetSession", 1)
	provider.AssertNumberOfCalls(t, "OnAuthStateChange", 1)
	assert.Equal(t, Authenticated, guard.State())
	assert.Equal(t, "u1", guard.CurrentUser().ID)
	assert.Equal(t, []string{"u1"}, categories.calls())
}

func Test_OnSessionFetchError_ShouldForceSignOutAndSettleAnonymous(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(nil, errors.New("corrupted token"))
	provider.On("SignOut", mock.Anything).Return(nil).Once()
	provider.On("OnAuthStateChange").Return()
	categories := &recordingBootstrapper{}
	guard := NewGuard(provider, categories)

	guard.InitAuth(context.Background())

	provider.AssertExpectations(t)
	assert.Equal(t, Anonymous, guard.State())
	assert.Nil(t, guard.CurrentUser())
	require.NoError(t, guard.Await(context.Background()))
	assert.Empty(t, categories.calls())
}

func Test_OnBootstrapFailure_ShouldNotBlockOrFailAuth(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(signedIn("u1"), nil)
	provider.On("OnAuthStateChange").Return()
	categories := &recordingBootstrapper{err: errors.New("gateway down")}
	guard := NewGuard(provider, categories)

	guard.InitAuth(context.Background())
	guard.WaitBootstrap()

	assert.Equal(t, Authenticated, guard.State())
	assert.Equal(t, []string{"u1"}, categories.calls())
}

func Test_OnAuthEvents_ShouldTrackSession(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(nil, nil)
	provider.On("OnAuthStateChange").Return()
	categories := &recordingBootstrapper{}
	guard := NewGuard(provider, categories)
	guard.InitAuth(context.Background())
	require.Equal(t, Anonymous, guard.State())

	provider.fire(session.SignedIn, signedIn("u2"))
	guard.WaitBootstrap()
	assert.Equal(t, "u2", guard.CurrentUser().ID)
	assert.Equal(t, []string{"u2"}, categories.calls())

	refreshed := signedIn("u2")
	refreshed.AccessToken = "fresh"
	provider.fire(session.TokenRefreshed, refreshed)
	assert.Equal(t, "fresh", guard.Snapshot().Session.AccessToken)
	assert.Equal(t, []string{"u2"}, categories.calls())

	provider.fire(session.SignedOut, signedIn("u2"))
	assert.Equal(t, Anonymous, guard.State())
	assert.Nil(t, guard.Snapshot().Session)
}

func Test_OnSignOut_ShouldClearBeforeProviderConfirms(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(signedIn("u1"), nil)
	provider.On("OnAuthStateChange").Return()
	guard := NewGuard(provider, nil)
	guard.InitAuth(context.Background())

	var userDuringCall *session.User
	provider.On("SignOut", mock.Anything).Run(func(mock.Arguments) {
		userDuringCall = guard.CurrentUser()
	}).Return(errors.New("network"))

	err := guard.SignOut(context.Background())

	assert.Error(t, err)
	assert.Nil(t, userDuringCall)
	assert.Equal(t, Anonymous, guard.State())
}

func Test_OnSignUp_ShouldAdoptSessionAndBootstrap(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(nil, nil)
	provider.On("OnAuthStateChange").Return()
	provider.On("SignUp", mock.Anything, "new@mail.test", "secret").Return(signedIn("u3"), nil)
	categories := &recordingBootstrapper{err: errors.New("bootstrap failed")}
	guard := NewGuard(provider, categories)
	guard.InitAuth(context.Background())

	sess, err := guard.SignUp(context.Background(), "new@mail.test", "secret")
	guard.WaitBootstrap()

	require.NoError(t, err)
	assert.Equal(t, "u3", sess.User.ID)
	assert.Equal(t, "u3", guard.CurrentUser().ID)
	assert.Equal(t, []string{"u3"}, categories.calls())
}

func Test_OnSignedInDuringClose_ShouldNotStartBootstrap(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GetSession", mock.Anything).Return(nil, nil)
	provider.On("OnAuthStateChange").Return()
	categories := &recordingBootstrapper{}
	guard := NewGuard(provider, categories)
	guard.InitAuth(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			provider.fire(session.SignedIn, signedIn("u4"))
		}()
	}
	guard.Close()
	wg.Wait()
	guard.WaitBootstrap()

	provider.fire(session.SignedIn, signedIn("u5"))
	guard.WaitBootstrap()

	assert.Equal(t, Authenticated, guard.State())
	assert.Equal(t, "u5", guard.CurrentUser().ID)
	assert.NotContains(t, categories.calls(), "u5")
	assert.LessOrEqual(t, len(categories.calls()), 20)
}

func Test_OnUpdatePasswordAnonymous_ShouldFail(t *testing.T) {
	guard := NewGuard(&mockProvider{}, nil)

	_, err := guard.UpdatePassword(context.Background(), "new")

	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func Test_OnAwaitBeforeInit_ShouldRespectContext(t *testing.T) {
	guard := NewGuard(&mockProvider{}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := guard.Await(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, guard.Snapshot().Loading())
}

func Test_OnLocalProvider_ShouldPersistSessionPerEmail(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	provider := NewLocalProvider(ctx, store)
	guard := NewGuard(provider, nil)
	guard.InitAuth(ctx)
	require.Equal(t, Anonymous, guard.State())

	first, err := guard.SignIn(ctx, " Me@Mail.test ", "")
	require.NoError(t, err)
	assert.Equal(t, "me@mail.test", first.User.Email)

	reopened := NewLocalProvider(ctx, store)
	sess, err := reopened.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, sess.User.ID)

	require.NoError(t, guard.SignOut(ctx))
	again, err := guard.SignIn(ctx, "me@mail.test", "")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, again.User.ID)

	_, err = provider.SignIn(ctx, "  ", "")
	assert.ErrorIs(t, err, ErrEmptyEmail)
}
