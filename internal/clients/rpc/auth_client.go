package rpc

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/accounts"
	"max.ks1230/expense-tracker/internal/model/kv"
)

const sessionKey = "auth:session"

type authConfig interface {
	RefreshInterval() time.Duration
	RefreshMargin() time.Duration
}

// AuthClient is the remote identity provider. The session is persisted in the
// local store and refreshed in the background before it expires.
type AuthClient struct {
	conn     *Conn
	stored   *kv.Value[*session.Session]
	clock    clockwork.Clock
	interval time.Duration
	margin   time.Duration

	mu        sync.Mutex
	listeners map[int]session.Listener
	nextSub   int
}

func NewAuthClient(ctx context.Context, conn *Conn, store kv.Store, clock clockwork.Clock, config authConfig) *AuthClient {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AuthClient{
		conn:      conn,
		stored:    kv.New[*session.Session](ctx, store, sessionKey, nil),
		clock:     clock,
		interval:  config.RefreshInterval(),
		margin:    config.RefreshMargin(),
		listeners: make(map[int]session.Listener),
	}
}

// AccessToken returns the token of the stored session, "" when signed out.
func (c *AuthClient) AccessToken() string {
	if sess := c.stored.Get(); sess != nil {
		return sess.AccessToken
	}
	return ""
}

// GetSession returns the stored session, refreshing it first when it has expired.
func (c *AuthClient) GetSession(ctx context.Context) (*session.Session, error) {
	if err := c.stored.WaitLoaded(ctx); err != nil {
		return nil, errors.Wrap(err, "load session")
	}
	sess := c.stored.Get()
	if sess == nil || !sess.Expired(c.clock.Now()) {
		return sess, nil
	}
	refreshed, err := c.refresh(ctx, sess)
	if err != nil {
		return nil, errors.Wrap(err, "refresh expired session")
	}
	return refreshed, nil
}

func (c *AuthClient) OnAuthStateChange(fn session.Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *AuthClient) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	return c.signIn(ctx, methodSignUp, email, password)
}

func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	return c.signIn(ctx, methodSignIn, email, password)
}

func (c *AuthClient) signIn(ctx context.Context, method, email, password string) (*session.Session, error) {
	out, err := c.conn.invoke(ctx, method, "", map[string]any{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	sess, err := sessionFromStruct(out)
	if err != nil {
		return nil, err
	}
	if err = c.stored.Set(ctx, sess); err != nil {
		logger.Warn("session not persisted", zap.Error(err))
	}
	c.emit(session.SignedIn, sess)
	return sess, nil
}

// SignOut forgets the session locally. Tokens are stateless, the server keeps nothing.
func (c *AuthClient) SignOut(ctx context.Context) error {
	err := c.stored.Delete(ctx)
	c.emit(session.SignedOut, nil)
	return errors.Wrap(err, "clear session")
}

func (c *AuthClient) UpdatePassword(ctx context.Context, password string) (*session.User, error) {
	out, err := c.conn.invoke(ctx, methodUpdatePass, c.AccessToken(), map[string]any{"password": password})
	if err != nil {
		return nil, err
	}
	user := userFromRow(rowField(out, "user"))
	c.emit(session.UserUpdated, c.stored.Get())
	return user, nil
}

func (c *AuthClient) ResetPasswordForEmail(ctx context.Context, email string) error {
	_, err := c.conn.invoke(ctx, methodResetPassword, "", map[string]any{"email": email})
	return err
}

// RunRefresh refreshes the session whenever it gets within the margin of expiry.
func (c *AuthClient) RunRefresh(ctx context.Context) {
	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start refreshing session")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop refreshing session")
			return
		// fake first tick to check the stored session immediately
		case <-firstTick:
			c.refreshOnce(ctx)
		case <-ticker.Chan():
			c.refreshOnce(ctx)
		}
	}
}

func (c *AuthClient) refreshOnce(ctx context.Context) {
	sess := c.stored.Get()
	if sess == nil || sess.ExpiresAt.IsZero() || c.clock.Now().Add(c.margin).Before(sess.ExpiresAt) {
		return
	}
	if _, err := c.refresh(ctx, sess); err != nil {
		logger.Error("cannot refresh session", zap.Error(err))
	}
}

func (c *AuthClient) refresh(ctx context.Context, sess *session.Session) (*session.Session, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "refreshSession")
	defer span.Finish()

	out, err := c.conn.invoke(ctx, methodRefresh, "", map[string]any{"refresh_token": sess.RefreshToken})
	if err != nil {
		ext.Error.Set(span, true)
		if errors.Is(err, ErrUnauthenticated) || errors.Is(err, accounts.ErrInvalidToken) {
			logger.Info("refresh token rejected, signing out")
			if signOutErr := c.SignOut(ctx); signOutErr != nil {
				logger.Warn("sign out failed", zap.Error(signOutErr))
			}
		}
		return nil, err
	}
	refreshed, err := sessionFromStruct(out)
	if err != nil {
		return nil, err
	}
	if err = c.stored.Set(ctx, refreshed); err != nil {
		logger.Warn("refreshed session not persisted", zap.Error(err))
	}
	c.emit(session.TokenRefreshed, refreshed)
	logger.Info("session refreshed")
	return refreshed, nil
}

func (c *AuthClient) emit(event session.Event, sess *session.Session) {
	c.mu.Lock()
	listeners := make([]session.Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(event, sess)
	}
}
