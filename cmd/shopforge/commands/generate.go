package commands

import (
	"fmt"
	"path/filepath"

	"github.com/marshallshelly/shopforge/cmd/shopforge/output"
	"github.com/marshallshelly/shopforge/pkg/dataset"
	"github.com/spf13/cobra"
)

var (
	// Generate flags
	seed          uint64
	customerCount int
	productCount  int
	orderCount    int
	itemTarget    int
	minRows       int
	maxRows       int
	softCap       int
	maxQuantity   int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic CSV datasets",
	Long: `Generate the five CSV datasets (customers, products, orders, order
items, payments) from a single seeded random source. Existing files in
the data directory are overwritten.

Row counts left at 0 are drawn uniformly from [--min-rows, --max-rows].
The same seed and counts always reproduce byte-identical files.

Examples:
  shopforge generate                          # counts drawn from the default range
  shopforge generate --seed 7 --orders 100    # fixed order count
  shopforge generate --items 50 --orders 200  # item target below order count
                                              # is raised to the order count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Uint64Var(&seed, "seed", dataset.DefaultConfig.Seed, "Seed for the random source")
	generateCmd.Flags().IntVar(&customerCount, "customers", 0, "Number of customers (0 = draw from range)")
	generateCmd.Flags().IntVar(&productCount, "products", 0, "Number of products (0 = draw from range)")
	generateCmd.Flags().IntVar(&orderCount, "orders", 0, "Number of orders (0 = draw from range)")
	generateCmd.Flags().IntVar(&itemTarget, "items", 0, "Target number of order items (0 = draw from range)")
	generateCmd.Flags().IntVar(&minRows, "min-rows", dataset.DefaultConfig.MinRows, "Lower bound of the row-count range")
	generateCmd.Flags().IntVar(&maxRows, "max-rows", dataset.DefaultConfig.MaxRows, "Upper bound of the row-count range")
	generateCmd.Flags().IntVar(&softCap, "soft-cap", dataset.DefaultConfig.SoftCap, "Max items per non-final order during allocation")
	generateCmd.Flags().IntVar(&maxQuantity, "max-quantity", dataset.DefaultConfig.MaxQuantity, "Max quantity per order item")
}

func runGenerate() error {
	cfg := dataset.Config{
		Seed:        seed,
		Customers:   customerCount,
		Products:    productCount,
		Orders:      orderCount,
		Items:       itemTarget,
		MinRows:     minRows,
		MaxRows:     maxRows,
		SoftCap:     softCap,
		MaxQuantity: maxQuantity,
	}

	ds, err := dataset.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generating datasets: %w", err)
	}

	if err := ds.WriteCSVs(dataDir); err != nil {
		return fmt.Errorf("writing datasets: %w", err)
	}

	output.Section("Generated Datasets")
	if verbose {
		for _, name := range []string{
			dataset.CustomersFile, dataset.ProductsFile, dataset.OrdersFile,
			dataset.OrderItemsFile, dataset.PaymentsFile,
		} {
			output.Muted("wrote %s", filepath.Join(dataDir, name))
		}
	}
	output.Info("customers:   %d", len(ds.Customers))
	output.Info("products:    %d", len(ds.Products))
	output.Info("orders:      %d", len(ds.Orders))
	output.Info("order items: %d", len(ds.Items))
	output.Info("payments:    %d", len(ds.Payments))

	if ds.Coerced {
		output.Warning("Item target was below the order count; raised to %d so every order has an item", ds.EffectiveTarget)
	}

	fmt.Println()
	output.Success("Datasets written to %s (seed %d)", dataDir, seed)
	return nil
}
