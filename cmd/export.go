package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Fox-16s/reservat-io/cmd/bootstrap"
	"github.com/Fox-16s/reservat-io/internal/infra/export"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the monthly report workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "monthly-report.xlsx", "output .xlsx path")
	return cmd
}

func runExport(ctx context.Context, path string) error {
	var q queries.ReservationQueries
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(&q),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("failed to stop application", "error", err)
		}
	}()

	monthly, err := q.MonthlyTotals(ctx)
	if err != nil {
		return err
	}
	reservations, _, err := q.List(ctx, queries.ListFilter{})
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err, "create export file")
	}
	defer f.Close()

	if err = export.WriteReport(f, monthly, reservations); err != nil {
		return err
	}
	slog.Info("report written", "path", path, "months", len(monthly), "reservations", len(reservations))
	return nil
}
