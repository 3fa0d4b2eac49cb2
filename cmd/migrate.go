package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Fox-16s/reservat-io/internal/infra/db"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"
	"github.com/Fox-16s/reservat-io/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSQL(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB) error {
					return migrations.Up(ctx, sqlDB)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSQL(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB) error {
					return migrations.Down(ctx, sqlDB)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSQL(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB) error {
					statuses, err := migrations.Statuses(ctx, sqlDB)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s %s\n", s.Version, state, s.Source)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func withSQL(ctx context.Context, fn func(ctx context.Context, sqlDB *sql.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB := db.OpenSQL(pool)
	defer sqlDB.Close()

	return fn(ctx, sqlDB)
}
