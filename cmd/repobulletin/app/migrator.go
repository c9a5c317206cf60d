package app

import (
	"github.com/spf13/cobra"
	"repobulletin.shikanime.studio/internal/config"
	"repobulletin.shikanime.studio/internal/database"
)

// NewMigrateUpCmd returns the command applying all pending migrations.
func NewMigrateUpCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cfg, (*database.Migrator).Up)
		},
	}
}

// NewMigrateDownCmd returns the command reverting all applied migrations.
func NewMigrateDownCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert all applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cfg, (*database.Migrator).Down)
		},
	}
}

func migrate(cfg *config.Config, fn func(*database.Migrator) error) error {
	mg, err := database.NewMigratorForConf(cfg)
	if err != nil {
		return err
	}
	defer mg.Close()
	return fn(mg)
}
