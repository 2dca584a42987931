package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	gridpersistence "github.com/blumenos/gridadmin/modules/grid/infrastructure/persistence"
	gridservices "github.com/blumenos/gridadmin/modules/grid/services"
	hrmpersistence "github.com/blumenos/gridadmin/modules/hrm/infrastructure/persistence"
	hrmservices "github.com/blumenos/gridadmin/modules/hrm/services"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/csvimport"
	"github.com/blumenos/gridadmin/pkg/eventbus"
	"github.com/blumenos/gridadmin/pkg/logging"
)

type importOptions struct {
	input string
	apply bool
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:       "import {substations|employees}",
		Short:     "Validate and import a CSV file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"substations", "employees"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runImport(cmd.Context(), cfg, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "CSV file to import (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Write to the database (default is validate only)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runImport(ctx context.Context, cfg cliConfig, entity string, opts importOptions) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("failed to open %s: %w", opts.input, err))
	}
	defer func() { _ = f.Close() }()

	switch entity {
	case "substations":
		result, err := csvimport.Ingest(f, gridservices.SubstationSchema, gridservices.BindSubstation)
		if err != nil {
			return withCode(exitValidation, err)
		}
		if !result.OK() {
			return reportRowErrors(result.Messages(), len(result.Valid))
		}
		if !opts.apply {
			fmt.Printf("dry-run: %d substations valid, nothing written\n", len(result.Valid))
			return nil
		}
		return withPool(ctx, cfg, func(ctx context.Context) error {
			svc := gridservices.NewSubstationService(
				gridpersistence.NewSubstationRepository(),
				eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel)),
			)
			return composables.InTx(ctx, func(txCtx context.Context) error {
				created, err := svc.BulkCreate(txCtx, result.Valid)
				if err != nil {
					return withCode(exitDB, err)
				}
				fmt.Printf("imported %d substations\n", len(created))
				return nil
			})
		})
	case "employees":
		result, err := csvimport.Ingest(f, hrmservices.EmployeeSchema, hrmservices.BindEmployee)
		if err != nil {
			return withCode(exitValidation, err)
		}
		if !result.OK() {
			return reportRowErrors(result.Messages(), len(result.Valid))
		}
		if !opts.apply {
			fmt.Printf("dry-run: %d employees valid, nothing written\n", len(result.Valid))
			return nil
		}
		return withPool(ctx, cfg, func(ctx context.Context) error {
			svc := hrmservices.NewEmployeeService(
				hrmpersistence.NewEmployeeRepository(),
				eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel)),
			)
			return composables.InTx(ctx, func(txCtx context.Context) error {
				created, err := svc.BulkCreate(txCtx, result.Valid)
				if err != nil {
					return withCode(exitDB, err)
				}
				fmt.Printf("imported %d employees\n", len(created))
				return nil
			})
		})
	default:
		return withCode(exitUsage, fmt.Errorf("unknown entity %q", entity))
	}
}

func reportRowErrors(messages []string, valid int) error {
	for _, msg := range messages {
		fmt.Fprintln(os.Stderr, msg)
	}
	return withCode(exitValidation,
		fmt.Errorf("%d rows failed validation, %d rows valid", len(messages), valid))
}

// withPool connects to the database and runs fn with the pool on the context.
func withPool(ctx context.Context, cfg cliConfig, fn func(ctx context.Context) error) error {
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("failed to connect: %w", err))
	}
	defer pool.Close()
	return fn(composables.WithPool(ctx, pool))
}
