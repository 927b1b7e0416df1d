// Package auth tracks the session of the signed-in user and gates navigation and
// category bootstrapping on it.
package auth

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
)

var ErrNotSignedIn = errors.New("not signed in")

type State int

const (
	Uninitialized State = iota
	Loading
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// Provider is the remote identity service.
type Provider interface {
	GetSession(ctx context.Context) (*session.Session, error)
	OnAuthStateChange(fn session.Listener) (unsubscribe func())
	SignUp(ctx context.Context, email, password string) (*session.Session, error)
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	SignOut(ctx context.Context) error
	UpdatePassword(ctx context.Context, password string) (*session.User, error)
	ResetPasswordForEmail(ctx context.Context, email string) error
}

type categoryBootstrapper interface {
	EnsureForUser(ctx context.Context, userID string) (bool, error)
}

// Snapshot is the reactive view of the guard.
type Snapshot struct {
	State   State
	User    *session.User
	Session *session.Session
}

func (s Snapshot) Loading() bool {
	return s.State == Uninitialized || s.State == Loading
}

type Guard struct {
	provider   Provider
	categories categoryBootstrapper

	mu          sync.Mutex
	state       State
	initialized bool
	session     *session.Session
	settled     chan struct{}
	unsubscribe func()
	listeners   map[int]func(Snapshot)
	nextSub     int

	closed    bool
	bootstrap sync.WaitGroup
}

func NewGuard(provider Provider, categories categoryBootstrapper) *Guard {
	return &Guard{
		provider:   provider,
		categories: categories,
		settled:    make(chan struct{}),
		listeners:  make(map[int]func(Snapshot)),
	}
}

// InitAuth fetches the stored session and subscribes to auth changes. Only the
// first call does anything.
func (g *Guard) InitAuth(ctx context.Context) {
	g.mu.Lock()
	if g.initialized {
		g.mu.Unlock()
		return
	}
	g.initialized = true
	g.state = Loading
	g.mu.Unlock()
	g.notify()

	sess, err := g.provider.GetSession(ctx)
	if err != nil {
		logger.Error("cannot get session, signing out", zap.Error(err))
		if signOutErr := g.provider.SignOut(ctx); signOutErr != nil {
			logger.Warn("sign out after session error failed", zap.Error(signOutErr))
		}
		sess = nil
	}

	g.mu.Lock()
	g.adoptLocked(sess)
	close(g.settled)
	g.mu.Unlock()

	unsubscribe := g.provider.OnAuthStateChange(g.handleAuthChange)
	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()
	g.notify()

	if user := session.UserOf(sess); user != nil {
		g.bootstrapCategories(user.ID)
	}
	logger.Info("auth initialized", zap.String("state", g.State().String()))
}

func (g *Guard) handleAuthChange(event session.Event, sess *session.Session) {
	logger.Debug("auth state change", zap.String("event", string(event)))

	g.mu.Lock()
	if event == session.SignedOut {
		sess = nil
	}
	g.adoptLocked(sess)
	g.mu.Unlock()
	g.notify()

	if event == session.SignedIn {
		if user := session.UserOf(sess); user != nil {
			g.bootstrapCategories(user.ID)
		}
	}
}

// adoptLocked must run with g.mu held.
func (g *Guard) adoptLocked(sess *session.Session) {
	g.session = sess
	if session.UserOf(sess) != nil {
		g.state = Authenticated
	} else {
		g.state = Anonymous
	}
}

// bootstrapCategories runs detached from the caller; failures are only logged.
func (g *Guard) bootstrapCategories(userID string) {
	if g.categories == nil {
		return
	}
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		logger.Debug("skip category bootstrap after close", zap.String("user", userID))
		return
	}
	g.bootstrap.Add(1)
	g.mu.Unlock()
	go func() {
		defer g.bootstrap.Done()
		if _, err := g.categories.EnsureForUser(context.Background(), userID); err != nil {
			logger.Error("category bootstrap failed", zap.String("user", userID), zap.Error(err))
		}
	}()
}

// Await blocks until InitAuth has settled or ctx is done.
func (g *Guard) Await(ctx context.Context) error {
	select {
	case <-g.settled:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "await auth")
	}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// CurrentUser returns the signed-in user, nil while loading or anonymous.
func (g *Guard) CurrentUser() *session.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Authenticated {
		return nil
	}
	return session.UserOf(g.session)
}

func (g *Guard) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Guard) snapshotLocked() Snapshot {
	return Snapshot{State: g.state, User: session.UserOf(g.session), Session: g.session}
}

// Subscribe registers fn for every state change and returns the cancel func.
func (g *Guard) Subscribe(fn func(Snapshot)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextSub
	g.nextSub++
	g.listeners[id] = fn
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.listeners, id)
	}
}

func (g *Guard) notify() {
	g.mu.Lock()
	snapshot := g.snapshotLocked()
	listeners := make([]func(Snapshot), 0, len(g.listeners))
	for _, l := range g.listeners {
		listeners = append(listeners, l)
	}
	g.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// SignUp registers the account. A failing category bootstrap does not fail it.
func (g *Guard) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	sess, err := g.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "sign up")
	}
	g.adoptSignedIn(sess)
	return sess, nil
}

func (g *Guard) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	sess, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "sign in")
	}
	g.adoptSignedIn(sess)
	return sess, nil
}

func (g *Guard) adoptSignedIn(sess *session.Session) {
	user := session.UserOf(sess)
	if user == nil {
		return
	}
	g.mu.Lock()
	g.adoptLocked(sess)
	g.mu.Unlock()
	g.notify()
	g.bootstrapCategories(user.ID)
}

// SignOut clears the local identity before the provider confirms.
func (g *Guard) SignOut(ctx context.Context) error {
	g.mu.Lock()
	g.session = nil
	if g.state != Uninitialized {
		g.state = Anonymous
	}
	g.mu.Unlock()
	g.notify()

	return errors.Wrap(g.provider.SignOut(ctx), "sign out")
}

func (g *Guard) UpdatePassword(ctx context.Context, password string) (*session.User, error) {
	if g.CurrentUser() == nil {
		return nil, ErrNotSignedIn
	}
	user, err := g.provider.UpdatePassword(ctx, password)
	if err != nil {
		return nil, errors.Wrap(err, "update password")
	}
	return user, nil
}

func (g *Guard) ResetPasswordForEmail(ctx context.Context, email string) error {
	return errors.Wrap(g.provider.ResetPasswordForEmail(ctx, email), "reset password")
}

// Close drops the provider subscription and waits for running bootstraps. No new
// bootstrap starts afterwards.
func (g *Guard) Close() {
	g.mu.Lock()
	g.closed = true
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
	g.bootstrap.Wait()
}

// WaitBootstrap waits for detached category bootstraps started so far.
func (g *Guard) WaitBootstrap() {
	g.bootstrap.Wait()
}
