package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/kv"
)

const localSessionKey = "auth:session"

var ErrEmptyEmail = errors.New("email is required")

// LocalProvider serves the local storage mode: there are no passwords, the email
// alone names the profile and the session lives in the local store.
type LocalProvider struct {
	stored *kv.Value[*session.Session]

	mu        sync.Mutex
	listeners map[int]session.Listener
	nextSub   int
}

func NewLocalProvider(ctx context.Context, store kv.Store) *LocalProvider {
	return &LocalProvider{
		stored:    kv.New[*session.Session](ctx, store, localSessionKey, nil),
		listeners: make(map[int]session.Listener),
	}
}

func (p *LocalProvider) GetSession(ctx context.Context) (*session.Session, error) {
	if err := p.stored.WaitLoaded(ctx); err != nil {
		return nil, errors.Wrap(err, "load local session")
	}
	return p.stored.Get(), nil
}

func (p *LocalProvider) OnAuthStateChange(fn session.Listener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, _ string) (*session.Session, error) {
	return p.signIn(ctx, email)
}

func (p *LocalProvider) SignIn(ctx context.Context, email, _ string) (*session.Session, error) {
	return p.signIn(ctx, email)
}

func (p *LocalProvider) signIn(ctx context.Context, email string) (*session.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmptyEmail
	}
	sess := &session.Session{User: &session.User{ID: localUserID(email), Email: email}}
	if err := p.stored.Set(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "store local session")
	}
	p.emit(session.SignedIn, sess)
	return sess, nil
}

func (p *LocalProvider) SignOut(ctx context.Context) error {
	if err := p.stored.Delete(ctx); err != nil {
		return errors.Wrap(err, "clear local session")
	}
	p.emit(session.SignedOut, nil)
	return nil
}

func (p *LocalProvider) UpdatePassword(context.Context, string) (*session.User, error) {
	user := session.UserOf(p.stored.Get())
	if user == nil {
		return nil, ErrNotSignedIn
	}
	p.emit(session.UserUpdated, p.stored.Get())
	return user, nil
}

func (p *LocalProvider) ResetPasswordForEmail(_ context.Context, email string) error {
	logger.Info("local profiles have no password to reset", zap.String("email", email))
	return nil
}

func (p *LocalProvider) emit(event session.Event, sess *session.Session) {
	p.mu.Lock()
	listeners := make([]session.Listener, 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()

	for _, l := range listeners {
		l(event, sess)
	}
}

// localUserID is stable per email so a profile keeps its data across sign-ins.
func localUserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("expense-tracker:"+email)).String()
}
