package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marshallshelly/shopforge/cmd/shopforge/output"
	"github.com/marshallshelly/shopforge/pkg/csvio"
	"github.com/marshallshelly/shopforge/pkg/store"
	"github.com/spf13/cobra"
)

var (
	// Report flags
	sqlPath string
	outPath string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the SQL report against the loaded database",
	Long: `Execute the externally supplied SQL aggregation against the SQLite
database, render the result as a table, and save it as a CSV file. An
empty result prints a notice and skips the file write.

Examples:
  shopforge report                        # run ./report.sql
  shopforge report --sql monthly.sql      # run another query
  shopforge report --out /tmp/report.csv  # save elsewhere`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&sqlPath, "sql", "./report.sql", "Path to the report SQL file")
	reportCmd.Flags().StringVar(&outPath, "out", "", "Output CSV path (default <data-dir>/final_report.csv)")
}

func runReport() error {
	query, err := os.ReadFile(sqlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: SQL file %s", store.ErrMissingInput, sqlPath)
		}
		return fmt.Errorf("reading SQL file: %w", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("%w: database %s (run 'shopforge load' first)", store.ErrMissingInput, dbPath)
	}

	ctx := context.Background()

	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	result, err := store.RunReport(ctx, db, string(query))
	if err != nil {
		return fmt.Errorf("running report: %w", err)
	}

	if result.Empty() {
		output.Warning("No rows returned by the report")
		return nil
	}

	fmt.Println(output.RenderTable(result.Columns, result.Rows))

	if outPath == "" {
		outPath = filepath.Join(dataDir, "final_report.csv")
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := csvio.WriteFile(outPath, result.Columns, result.Rows); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	output.Success("Report saved to %s", outPath)
	return nil
}
