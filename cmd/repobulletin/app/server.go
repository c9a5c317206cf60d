package app

import (
	"log/slog"

	"github.com/spf13/cobra"
	"repobulletin.shikanime.studio/internal/config"
	"repobulletin.shikanime.studio/internal/repobulletin/http"
)

// NewServerCmd returns the command running the API server.
func NewServerCmd(cfg *config.Config) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr != "" {
				cfg.Set("ADDR", addr)
			}
			cfg.Watch(ctx)

			shutdown, err := config.SetupTelemetry(ctx, cfg)
			if err != nil {
				slog.WarnContext(ctx, "Telemetry disabled", "error", err)
			}
			defer shutdown()

			srv, err := http.NewServerForConfig(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := srv.Close(); err != nil {
					slog.Error("Error during shutdown", "error", err)
				}
			}()

			if len(cfg.GetJWTSecret()) == 0 {
				slog.WarnContext(ctx, "JWT_SECRET is not set; every call is anonymous and editing is disabled")
			}
			if err := srv.ListenAndServe(ctx, cfg.GetAddr()); err != nil {
				return err
			}
			slog.Info("Server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Address to run the server on (host:port). If empty, uses HOST and PORT environment variables")
	return cmd
}
