package rpc

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/translate"
)

type tokenSource interface {
	AccessToken() string
}

// Conn is a client connection to the gateway server.
type Conn struct {
	conn *grpc.ClientConn
}

func Dial(addr string) (*Conn, error) {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot initiate new connection")
	}
	return &Conn{conn: conn}, nil
}

func (c *Conn) Close() {
	err := c.conn.Close()
	if err != nil {
		logger.Error("failed to close grpc connection", zap.Error(err))
	}
}

func (c *Conn) invoke(ctx context.Context, method, token string, fields map[string]any) (*structpb.Struct, error) {
	in, err := toStruct(fields)
	if err != nil {
		return nil, err
	}
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, authorizationHeader, "Bearer "+token)
	}
	out := new(structpb.Struct)
	if err = c.conn.Invoke(ctx, fullMethod(method), in, out); err != nil {
		return nil, fromStatus(method, err)
	}
	return out, nil
}

// Client is the remote Gateway. The user id arguments are informational: the
// server scopes every call to the token's user.
type Client struct {
	conn   *Conn
	tokens tokenSource
}

func NewClient(conn *Conn, tokens tokenSource) *Client {
	return &Client{conn: conn, tokens: tokens}
}

func (c *Client) call(ctx context.Context, method string, fields map[string]any) (*structpb.Struct, error) {
	return c.conn.invoke(ctx, method, c.tokens.AccessToken(), fields)
}

func (c *Client) Insert(ctx context.Context, table string, row translate.Row) (translate.Row, error) {
	out, err := c.call(ctx, methodInsert, requestRow(table, translate.Row{"row": row}))
	if err != nil {
		return nil, err
	}
	return rowField(out, "row"), nil
}

func (c *Client) Update(ctx context.Context, table, id, _ string, patch translate.Row) (translate.Row, error) {
	out, err := c.call(ctx, methodUpdate, requestRow(table, translate.Row{"id": id, "patch": patch}))
	if err != nil {
		return nil, err
	}
	return rowField(out, "row"), nil
}

func (c *Client) Delete(ctx context.Context, table, id, _ string) error {
	_, err := c.call(ctx, methodDelete, requestRow(table, translate.Row{"id": id}))
	return err
}

func (c *Client) SelectAll(ctx context.Context, table, _, orderBy string) ([]translate.Row, error) {
	out, err := c.call(ctx, methodSelectAll, requestRow(table, translate.Row{"order_by": orderBy}))
	if err != nil {
		return nil, err
	}
	return rowsField(out, "rows"), nil
}

func (c *Client) CallAggregate(ctx context.Context, name string, params translate.Row) ([]translate.Row, error) {
	out, err := c.call(ctx, methodCallAggregate, map[string]any{"name": name, "params": params})
	if err != nil {
		return nil, err
	}
	return rowsField(out, "rows"), nil
}

// requestRow is the shape sent by the client for a data call.
func requestRow(table string, extra translate.Row) map[string]any {
	fields := map[string]any{"table": table}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}
