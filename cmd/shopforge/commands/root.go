package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataDir string
	dbPath  string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shopforge",
	Short: "Shopforge - synthetic e-commerce dataset pipeline",
	Long: `Shopforge generates a synthetic relational e-commerce dataset, loads it
into a SQLite database, and runs an aggregate report over it.

The pipeline is three independent steps, each idempotent:
  generate - produce customers, products, orders, order items, and
             payments as CSV files from one seeded random source
  load     - drop-and-recreate the five-table schema and ingest the CSVs
             in one transaction, verifying row counts
  report   - run a SQL aggregation, render it as a table, and save it`,
	Version: "1.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "Directory for the CSV datasets")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./db/ecom.db", "Path to the SQLite database file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
