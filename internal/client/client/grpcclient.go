package client

import (
	"context"

	"github.com/dmitrijs2005/willbank/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withBearer(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.GRPCAuthorizationKey)
	if token != "" {
		md.Set(common.GRPCAuthorizationKey, common.BearerPrefix+token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

// UnaryAuthInterceptor attaches the session's bearer token to unary calls
// and, on codes.Unauthenticated, refreshes through coord and retries once.
// Methods matching publicMethods are invoked untouched.
func UnaryAuthInterceptor(session *Session, coord *Coordinator, publicMethods ...string) grpc.UnaryClientInterceptor {
	public := NewAllowlist(publicMethods...)

	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if public.Match(method) {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		token := session.AccessToken(ctx)
		err := invoker(withBearer(ctx, token), method, req, reply, cc, opts...)
		if status.Code(err) != codes.Unauthenticated {
			return err
		}

		fresh, rerr := coord.Refresh(ctx, token)
		if rerr != nil {
			return rerr
		}

		return invoker(withBearer(ctx, fresh), method, req, reply, cc, opts...)
	}
}
