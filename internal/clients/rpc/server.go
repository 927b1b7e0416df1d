package rpc

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/gateway"
)

const authorizationHeader = "authorization"

type accountService interface {
	SignUp(ctx context.Context, email, password string) (*session.Session, error)
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*session.Session, error)
	Authenticate(accessToken string) (string, error)
	User(ctx context.Context, userID string) (*session.User, error)
	UpdatePassword(ctx context.Context, userID, password string) (*session.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

type userIDKey struct{}

// GatewayServer exposes a Gateway and the account service over gRPC. Data calls
// are always scoped to the user of the access token, whatever the request says.
type GatewayServer struct {
	gateway  gateway.Gateway
	accounts accountService
	server   *grpc.Server
	lis      net.Listener
}

func NewServer(port int, gw gateway.Gateway, accounts accountService) (*GatewayServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}
	return newServerOn(lis, gw, accounts), nil
}

func newServerOn(lis net.Listener, gw gateway.Gateway, accounts accountService) *GatewayServer {
	s := &GatewayServer{
		gateway:  gw,
		accounts: accounts,
		lis:      lis,
	}
	s.server = grpc.NewServer(grpc.UnaryInterceptor(s.authenticate))
	s.server.RegisterService(&serviceDesc, s)
	return s
}

func (s *GatewayServer) Serve() {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		logger.Error("failed to serve gRPC", zap.Error(err))
	}
}

func (s *GatewayServer) Shutdown() {
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}

func (s *GatewayServer) authenticate(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	method := info.FullMethod[strings.LastIndex(info.FullMethod, "/")+1:]
	if !publicMethods[method] {
		userID, err := s.userFromMetadata(ctx)
		if err != nil {
			return nil, toStatus(method, err)
		}
		ctx = context.WithValue(ctx, userIDKey{}, userID)
	}
	resp, err := handler(ctx, req)
	logger.Debug("rpc handled",
		zap.String("method", method),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("failed", err != nil),
	)
	return resp, err
}

func (s *GatewayServer) userFromMetadata(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	values := md.Get(authorizationHeader)
	if len(values) == 0 {
		return "", ErrUnauthenticated
	}
	token := strings.TrimPrefix(values[0], "Bearer ")
	userID, err := s.accounts.Authenticate(token)
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *GatewayServer) Dispatch(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "rpc."+method)
	defer span.Finish()

	out, err := s.dispatch(ctx, method, in)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, toStatus(method, err)
	}
	return out, nil
}

func (s *GatewayServer) dispatch(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	userID, _ := ctx.Value(userIDKey{}).(string)
	table := stringField(in, "table")

	switch method {
	case methodInsert:
		row := rowField(in, "row")
		row["user_id"] = userID
		res, err := s.gateway.Insert(ctx, table, row)
		if err != nil {
			return nil, err
		}
		return toStruct(map[string]any{"row": res})
	case methodUpdate:
		res, err := s.gateway.Update(ctx, table, stringField(in, "id"), userID, rowField(in, "patch"))
		if err != nil {
			return nil, err
		}
		return toStruct(map[string]any{"row": res})
	case methodDelete:
		if err := s.gateway.Delete(ctx, table, stringField(in, "id"), userID); err != nil {
			return nil, err
		}
		return toStruct(map[string]any{})
	case methodSelectAll:
		rows, err := s.gateway.SelectAll(ctx, table, userID, stringField(in, "order_by"))
		if err != nil {
			return nil, err
		}
		return toStruct(map[string]any{"rows": rows})
	case methodCallAggregate:
		params := rowField(in, "params")
		params["user_id"] = userID
		rows, err := s.gateway.CallAggregate(ctx, stringField(in, "name"), params)
		if err != nil {
			return nil, err
		}
		return toStruct(map[string]any{"rows": rows})
	case methodSignUp:
		sess, err := s.accounts.SignUp(ctx, stringField(in, "email"), stringField(in, "password"))
		if err != nil {
			return nil, err
		}
		return sessionToStruct(sess)
	case methodSignIn:
		sess, err := s.accounts.SignIn(ctx, stringField(in, "email"), stringField(in, "password"))
		if err != nil {
			return nil, err
		}
		return sessionToStruct(sess)
	case methodRefresh:
		sess, err := s.accounts.Refresh(ctx, stringField(in, "refresh_token"))
		if err != nil {
			return nil, err
		}
		return sessionToStruct(sess)
	case methodGetUser:
		user, err := s.accounts.User(ctx, userID)
		if err != nil {
			return nil, err
		}
		return toStruct(map[string]any{"user": userFields(user)})
	case methodUpdatePass:
		user, err := s.accounts.UpdatePassword(ctx, userID, stringField(in, "password"))
		if err != nil {
			return nil, err
		}
		return toStruct(map[string]any{"user": userFields(user)})
	case methodResetPassword:
		if err := s.accounts.RequestPasswordReset(ctx, stringField(in, "email")); err != nil {
			return nil, err
		}
		return toStruct(map[string]any{})
	default:
		return nil, errors.Errorf("unknown method %s", method)
	}
}
