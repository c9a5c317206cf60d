package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"repobulletin.shikanime.studio/cmd/repobulletin/app"
	"repobulletin.shikanime.studio/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.New()
	var configFile, dsn string

	rootCmd := &cobra.Command{
		Use:           "repobulletin",
		Short:         "Repository bulletin server and utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.ReadFile(configFile); err != nil {
					return err
				}
			}
			if dsn != "" {
				cfg.Set("DSN", dsn)
			}
			config.SetupLog(cfg)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file; environment variables take precedence")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database source name in the format driver://dataSourceName. Falls back to DSN environment variable")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	migrateCmd.AddCommand(app.NewMigrateUpCmd(cfg), app.NewMigrateDownCmd(cfg))

	rootCmd.AddCommand(app.NewServerCmd(cfg), migrateCmd, app.NewTokenCmd(cfg))
	return rootCmd
}
