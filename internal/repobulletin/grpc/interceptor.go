package grpc

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"repobulletin.shikanime.studio/internal/auth"
)

// NewAuthInterceptor attaches the viewer of the request's session token to the
// context. Calls without a token stay anonymous; a token that does not verify
// is rejected.
func NewAuthInterceptor(secret []byte) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			token, err := auth.TokenFromRequest(req.Header())
			if errors.Is(err, auth.ErrNoToken) {
				return next(ctx, req)
			}
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if len(secret) == 0 {
				slog.WarnContext(ctx, "session token received but no JWT secret configured", "procedure", req.Spec().Procedure)
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}
			viewer, err := auth.ParseToken(token, secret)
			if err != nil {
				slog.InfoContext(ctx, "rejected session token", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}
			return next(auth.WithViewer(ctx, viewer), req)
		}
	}
}
