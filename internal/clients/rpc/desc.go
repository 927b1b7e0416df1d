// Package rpc carries the gateway and the account calls over gRPC. Messages are
// protobuf Structs holding snake_case rows.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const serviceName = "expensetracker.v1.Gateway"

const (
	methodInsert        = "Insert"
	methodUpdate        = "Update"
	methodDelete        = "Delete"
	methodSelectAll     = "SelectAll"
	methodCallAggregate = "CallAggregate"

	methodSignUp        = "SignUp"
	methodSignIn        = "SignIn"
	methodRefresh       = "Refresh"
	methodGetUser       = "GetUser"
	methodUpdatePass    = "UpdatePassword"
	methodResetPassword = "ResetPasswordForEmail"
)

// public methods are callable without an access token
var publicMethods = map[string]bool{
	methodSignUp:        true,
	methodSignIn:        true,
	methodRefresh:       true,
	methodResetPassword: true,
}

// Dispatcher serves every method of the service.
type Dispatcher interface {
	Dispatch(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error)
}

func fullMethod(method string) string {
	return "/" + serviceName + "/" + method
}

func unaryMethod(method string) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			d := srv.(Dispatcher)
			if interceptor == nil {
				return d.Dispatch(ctx, method, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return d.Dispatch(ctx, method, req.(*structpb.Struct))
			})
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Dispatcher)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(methodInsert),
		unaryMethod(methodUpdate),
		unaryMethod(methodDelete),
		unaryMethod(methodSelectAll),
		unaryMethod(methodCallAggregate),
		unaryMethod(methodSignUp),
		unaryMethod(methodSignIn),
		unaryMethod(methodRefresh),
		unaryMethod(methodGetUser),
		unaryMethod(methodUpdatePass),
		unaryMethod(methodResetPassword),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "expensetracker/v1/gateway.proto",
}
