package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blumenos/gridadmin/modules/billing/domain/aggregates/bill"
	billingpersistence "github.com/blumenos/gridadmin/modules/billing/infrastructure/persistence"
	billingservices "github.com/blumenos/gridadmin/modules/billing/services"
)

type exportOptions struct {
	output   string
	customer uint
	status   string
	limit    int
}

func newExportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bills as an xlsx report",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.output, "output", "", "Output file (default: report filename in cwd)")
	cmd.Flags().UintVar(&opts.customer, "customer", 0, "Restrict to one customer ID")
	cmd.Flags().StringVar(&opts.status, "status", "", "Restrict to one bill status")
	cmd.Flags().IntVar(&opts.limit, "limit", 10000, "Maximum rows to export")

	return cmd
}

func runExport(ctx context.Context, cfg cliConfig, opts exportOptions) error {
	params := bill.FindParams{
		Limit:      opts.limit,
		Status:     bill.Status(strings.ToLower(opts.status)),
		CustomerID: opts.customer,
	}
	return withPool(ctx, cfg, func(ctx context.Context) error {
		svc := billingservices.NewBillService(billingpersistence.NewBillRepository())
		raw, err := svc.ExportReport(ctx, params)
		if err != nil {
			return withCode(exitDB, err)
		}
		path := opts.output
		if path == "" {
			path = billingservices.ReportFilename(params)
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return withCode(exitUsage, fmt.Errorf("failed to write %s: %w", path, err))
		}
		fmt.Println(path)
		return nil
	})
}
