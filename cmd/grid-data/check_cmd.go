package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

type finding struct {
	Rule    string `json:"rule"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func newCheckCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Scan grid data for quality problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cfg, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit findings as JSON")

	return cmd
}

func runCheck(ctx context.Context, cfg cliConfig, asJSON bool) error {
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("failed to connect: %w", err))
	}
	defer pool.Close()

	var findings []finding
	rules := cfg.Checks

	if rules.OrphanSubstations {
		got, err := scanOrphanSubstations(ctx, pool)
		if err != nil {
			return withCode(exitDB, err)
		}
		findings = append(findings, got...)
	}
	if rules.DuplicateCodes {
		got, err := scanDuplicateCodes(ctx, pool)
		if err != nil {
			return withCode(exitDB, err)
		}
		findings = append(findings, got...)
	}
	if rules.CoordinateRange {
		got, err := scanCoordinateRange(ctx, pool, rules)
		if err != nil {
			return withCode(exitDB, err)
		}
		findings = append(findings, got...)
	}

	if err := printFindings(findings, asJSON); err != nil {
		return err
	}
	if len(findings) > 0 {
		return withCode(exitFindings, fmt.Errorf("%d findings", len(findings)))
	}
	return nil
}

func scanOrphanSubstations(ctx context.Context, pool *pgxpool.Pool) ([]finding, error) {
	const q = `
		SELECT s.new_code
		FROM substations s
		LEFT JOIN feeders f ON f.id = s.feeder_id
		WHERE f.id IS NULL
		ORDER BY s.new_code`
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []finding
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		out = append(out, finding{
			Rule:    "orphan-substation",
			Subject: code,
			Message: "substation references a feeder that does not exist",
		})
	}
	return out, rows.Err()
}

func scanDuplicateCodes(ctx context.Context, pool *pgxpool.Pool) ([]finding, error) {
	const q = `
		SELECT nerc_code, COUNT(*)
		FROM substations
		WHERE nerc_code <> ''
		GROUP BY nerc_code
		HAVING COUNT(*) > 1
		ORDER BY nerc_code`
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []finding
	for rows.Next() {
		var code string
		var n int
		if err := rows.Scan(&code, &n); err != nil {
			return nil, err
		}
		out = append(out, finding{
			Rule:    "duplicate-nerc-code",
			Subject: code,
			Message: fmt.Sprintf("NERC code shared by %d substations", n),
		})
	}
	return out, rows.Err()
}

func scanCoordinateRange(ctx context.Context, pool *pgxpool.Pool, rules checkRules) ([]finding, error) {
	const q = `
		SELECT new_code, latitude, longitude
		FROM substations
		WHERE latitude < $1 OR latitude > $2 OR longitude < $3 OR longitude > $4
		ORDER BY new_code`
	rows, err := pool.Query(ctx, q,
		rules.Latitude.Min, rules.Latitude.Max,
		rules.Longitude.Min, rules.Longitude.Max,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []finding
	for rows.Next() {
		var code string
		var lat, lon float64
		if err := rows.Scan(&code, &lat, &lon); err != nil {
			return nil, err
		}
		out = append(out, finding{
			Rule:    "coordinate-out-of-range",
			Subject: code,
			Message: fmt.Sprintf("coordinates (%f, %f) fall outside the configured bounds", lat, lon),
		})
	}
	return out, rows.Err()
}

func printFindings(findings []finding, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	}
	for _, f := range findings {
		fmt.Printf("%s\t%s\t%s\n", f.Rule, f.Subject, f.Message)
	}
	return nil
}
