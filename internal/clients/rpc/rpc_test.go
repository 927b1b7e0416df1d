package rpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/model/accounts"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/kv"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/translate"
)

type testConfig struct{}

func (testConfig) JWTSecret() string              { return "0123456789abcdef0123456789abcdef" }
func (testConfig) Issuer() string                 { return "expense-tracker-test" }
func (testConfig) AccessTTL() time.Duration       { return time.Minute }
func (testConfig) RefreshTTL() time.Duration      { return 24 * time.Hour }
func (testConfig) BcryptCost() int                { return bcrypt.MinCost }
func (testConfig) RefreshInterval() time.Duration { return time.Second }
func (testConfig) RefreshMargin() time.Duration   { return 10 * time.Second }

type RPCSuite struct {
	suite.Suite
	server *GatewayServer
	lis    *bufconn.Listener
	conns  []*Conn
}

func TestRPCSuite(t *testing.T) {
	suite.Run(t, new(RPCSuite))
}

func (s *RPCSuite) SetupTest() {
	ctx := context.Background()
	s.lis = bufconn.Listen(1 << 20)
	store := kv.NewMemoryStore()
	users := storage.NewLocalUsers(ctx, store)
	s.server = newServerOn(s.lis, storage.NewLocalStorage(ctx, store), accounts.NewService(users, testConfig{}))
	go s.server.Serve()
}

func (s *RPCSuite) TearDownTest() {
	for _, c := range s.conns {
		c.Close()
	}
	s.conns = nil
	s.server.Shutdown()
}

func (s *RPCSuite) dial() *Conn {
	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return s.lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	c := &Conn{conn: conn}
	s.conns = append(s.conns, c)
	return c
}

func (s *RPCSuite) signedUp(email string, clock clockwork.Clock) (*AuthClient, *Client) {
	ctx := context.Background()
	conn := s.dial()
	authClient := NewAuthClient(ctx, conn, kv.NewMemoryStore(), clock, testConfig{})
	_, err := authClient.SignUp(ctx, email, "secret1")
	s.Require().NoError(err)
	return authClient, NewClient(conn, authClient)
}

func (s *RPCSuite) Test_OnInsert_ShouldScopeRowToTokenUser() {
	ctx := context.Background()
	authClient, client := s.signedUp("a@mail.test", nil)
	userID := authClient.stored.Get().User.ID

	row, err := client.Insert(ctx, gateway.TableExpenses, translate.Row{
		"user_id":     "someone-else",
		"amount":      "12.5",
		"category_id": "c1",
		"date":        "2025-10-13",
	})

	s.Require().NoError(err)
	s.Equal(userID, row.Str("user_id"))
	s.NotEmpty(row.Str("id"))

	rows, err := client.SelectAll(ctx, gateway.TableExpenses, "someone-else", "created_at desc")
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *RPCSuite) Test_OnDeleteOfForeignRow_ShouldReturnNotFound() {
	ctx := context.Background()
	_, owner := s.signedUp("owner@mail.test", nil)
	_, intruder := s.signedUp("intruder@mail.test", nil)
	row, err := owner.Insert(ctx, gateway.TableExpenses, translate.Row{
		"amount": "1", "category_id": "c1", "date": "2025-10-13",
	})
	s.Require().NoError(err)

	err = intruder.Delete(ctx, gateway.TableExpenses, row.Str("id"), row.Str("user_id"))
	s.ErrorIs(err, gateway.ErrNotFound)

	rows, err := owner.SelectAll(ctx, gateway.TableExpenses, "", "created_at desc")
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *RPCSuite) Test_OnAggregate_ShouldRoundTripRows() {
	ctx := context.Background()
	_, client := s.signedUp("a@mail.test", nil)

	cats, err := client.CallAggregate(ctx, gateway.AggCreateUserCategories, translate.Row{
		"category_set": "default", "locale": "en",
	})
	s.Require().NoError(err)
	s.Len(cats, 5)
	s.Equal(0, cats[0].Int("level"))

	_, err = client.CallAggregate(ctx, "drop_tables", translate.Row{})
	s.ErrorIs(err, gateway.ErrUnknownAggregate)
}

func (s *RPCSuite) Test_OnCallWithoutToken_ShouldBeUnauthenticated() {
	client := NewClient(s.dial(), staticToken(""))

	_, err := client.SelectAll(context.Background(), gateway.TableExpenses, "u1", "date desc")

	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *RPCSuite) Test_OnWrongPassword_ShouldMapCredentialsError() {
	ctx := context.Background()
	s.signedUp("a@mail.test", nil)
	authClient := NewAuthClient(ctx, s.dial(), kv.NewMemoryStore(), nil, testConfig{})

	_, err := authClient.SignIn(ctx, "a@mail.test", "wrong-password")
	s.ErrorIs(err, accounts.ErrWrongCredentials)

	_, err = authClient.SignUp(ctx, "a@mail.test", "secret1")
	s.ErrorIs(err, accounts.ErrEmailTaken)
}

func (s *RPCSuite) Test_OnExpiredSession_ShouldRefreshOnGetSession() {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Now())
	authClient, _ := s.signedUp("a@mail.test", clock)
	before := authClient.stored.Get()

	var mu sync.Mutex
	var events []session.Event
	authClient.OnAuthStateChange(func(e session.Event, _ *session.Session) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})
	clock.Advance(time.Hour)

	sess, err := authClient.GetSession(ctx)

	s.Require().NoError(err)
	s.NotEqual(before.AccessToken, sess.AccessToken)
	s.Equal(before.User.ID, sess.User.ID)
	mu.Lock()
	s.Equal([]session.Event{session.TokenRefreshed}, events)
	mu.Unlock()
}

func (s *RPCSuite) Test_OnUpdatePassword_ShouldUseSessionToken() {
	ctx := context.Background()
	authClient, _ := s.signedUp("a@mail.test", nil)

	user, err := authClient.UpdatePassword(ctx, "secret2")
	s.Require().NoError(err)
	s.Equal("a@mail.test", user.Email)

	s.Require().NoError(authClient.SignOut(ctx))
	s.Empty(authClient.AccessToken())
	_, err = authClient.SignIn(ctx, "a@mail.test", "secret2")
	s.NoError(err)

	s.NoError(authClient.ResetPasswordForEmail(ctx, "a@mail.test"))
}

type staticToken string

func (t staticToken) AccessToken() string { return string(t) }

func Test_OnPlain_ShouldConvertRowsForStructpb(t *testing.T) {
	in := map[string]any{
		"rows": []translate.Row{{"amount": "1", "level": 2}},
		"at":   time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC),
	}

	st, err := toStruct(in)

	require.NoError(t, err)
	rows := rowsField(st, "rows")
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Str("amount"))
	assert.Equal(t, 2, rows[0].Int("level"))
	assert.Equal(t, "2025-10-13T10:00:00Z", stringField(st, "at"))
}
