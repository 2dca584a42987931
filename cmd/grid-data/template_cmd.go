package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	gridservices "github.com/blumenos/gridadmin/modules/grid/services"
	hrmservices "github.com/blumenos/gridadmin/modules/hrm/services"
	"github.com/blumenos/gridadmin/pkg/csvimport"
)

func newTemplateCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write CSV import templates for every entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(outputDir)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", ".", "Directory to write templates into")

	return cmd
}

func runTemplate(outputDir string) error {
	schemas := []csvimport.Schema{
		gridservices.SubstationSchema,
		hrmservices.EmployeeSchema,
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return withCode(exitUsage, fmt.Errorf("failed to create %s: %w", outputDir, err))
	}
	for _, schema := range schemas {
		path := filepath.Join(outputDir, csvimport.TemplateFilename(schema))
		if err := os.WriteFile(path, csvimport.Template(schema), 0o644); err != nil {
			return withCode(exitUsage, fmt.Errorf("failed to write %s: %w", path, err))
		}
		fmt.Println(path)
	}
	return nil
}
