// Package http serves the bulletin Connect service, its health checks and the
// public bulletin pages.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	stdhttp "net/http"
	"time"

	"connectrpc.com/connect"
	grpchealth "connectrpc.com/grpchealth"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"repobulletin.shikanime.studio/internal/config"
	"repobulletin.shikanime.studio/internal/repobulletin"
	"repobulletin.shikanime.studio/internal/repobulletin/grpc"
	"repobulletin.shikanime.studio/pkgs/bulletin/v1/bulletinv1connect"
)

// Server holds handlers and dependencies for the bulletin HTTP server.
type Server struct {
	clients *repobulletin.RepoBulletin
	mux     *stdhttp.ServeMux
}

// NewServer initializes a Server and mounts the bulletin service, the gRPC
// health handler and the public pages.
func NewServer(clients *repobulletin.RepoBulletin) *Server {
	mux := stdhttp.NewServeMux()
	path, handler := bulletinv1connect.NewBulletinServiceHandler(
		grpc.NewBulletinService(clients),
		connect.WithInterceptors(grpc.NewAuthInterceptor(clients.JWTSecret())),
	)
	mux.Handle(path, handler)
	hpath, hhandler := grpchealth.NewHandler(HealthChecker{clients: clients})
	mux.Handle(hpath, hhandler)
	pages := &pageHandler{clients: clients}
	mux.Handle("GET /u/{user}", pages)
	return &Server{
		clients: clients,
		mux:     mux,
	}
}

// NewServerForConfig builds the clients from cfg and returns a configured Server.
func NewServerForConfig(cfg *config.Config) (*Server, error) {
	clients, err := repobulletin.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewServer(clients), nil
}

// Handler returns the instrumented root handler.
func (s *Server) Handler() stdhttp.Handler {
	return otelhttp.NewHandler(s.mux, "http.server")
}

// Close closes the database connections.
func (s *Server) Close() error {
	if s.clients != nil {
		return s.clients.Close()
	}
	return nil
}

// ListenAndServe serves on addr until ctx is done, sweeping idle edit
// sessions meanwhile.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &stdhttp.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}
	go s.clients.Sessions().Run(ctx, time.Minute)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()
	slog.InfoContext(ctx, "server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// HealthChecker reports health based on database connectivity.
type HealthChecker struct{ clients *repobulletin.RepoBulletin }

// Check implements grpchealth.Checker. It returns StatusServing when the database ping succeeds.
func (c HealthChecker) Check(
	ctx context.Context,
	req *grpchealth.CheckRequest,
) (*grpchealth.CheckResponse, error) {
	tracer := otel.Tracer("repobulletin/http")
	ctx, span := tracer.Start(ctx, "HealthChecker.Check")
	defer span.End()
	switch req.Service {
	case "", bulletinv1connect.BulletinServiceName:
		if err := c.clients.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", "service", req.Service, "error", err)
			return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
		}
		return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
	default:
		return nil, connect.NewError(
			connect.CodeNotFound,
			fmt.Errorf("unknown service: %s", req.Service),
		)
	}
}
