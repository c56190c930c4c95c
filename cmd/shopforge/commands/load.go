package commands

import (
	"context"
	"fmt"

	"github.com/marshallshelly/shopforge/cmd/shopforge/output"
	"github.com/marshallshelly/shopforge/cmd/shopforge/tui"
	"github.com/marshallshelly/shopforge/pkg/store"
	"github.com/spf13/cobra"
)

var (
	// Load flags
	interactive bool
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the CSV datasets into SQLite",
	Long: `Load the generated CSV files into the SQLite database. All five
tables are dropped, recreated, and filled inside a single transaction in
referential dependency order; post-load row counts are verified against
the CSVs and any failure rolls the whole run back.

Examples:
  shopforge load                    # load ./data into ./db/ecom.db
  shopforge load --db ./out.db      # load into another database file
  shopforge load --interactive      # confirm and watch progress in a TUI`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad()
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run in interactive mode with TUI")
}

func runLoad() error {
	// Run interactive TUI if flag is set
	if interactive {
		return tui.RunLoadUI(dbPath, dataDir)
	}

	ctx := context.Background()

	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	output.Section("Loading Datasets")
	if verbose {
		output.Muted("reading datasets from %s", dataDir)
	}
	counts, err := store.Load(ctx, db, dataDir)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	total := 0
	for _, c := range counts {
		output.Success("Loaded %d rows into '%s'", c.Rows, c.Table)
		total += c.Rows
	}

	fmt.Println()
	output.Success("All tables loaded into %s (total rows: %d)", dbPath, total)
	return nil
}
