package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/shopforge/pkg/dataset"
	"github.com/marshallshelly/shopforge/pkg/store"
)

// setTestFlags points the package-level flag state at temp locations and
// restores it when the test finishes.
func setTestFlags(t *testing.T) {
	t.Helper()

	prevDataDir, prevDBPath, prevVerbose := dataDir, dbPath, verbose
	prevSeed := seed
	prevCustomers, prevProducts, prevOrders, prevItems := customerCount, productCount, orderCount, itemTarget
	prevSQLPath, prevOutPath := sqlPath, outPath
	t.Cleanup(func() {
		dataDir, dbPath, verbose = prevDataDir, prevDBPath, prevVerbose
		seed = prevSeed
		customerCount, productCount, orderCount, itemTarget = prevCustomers, prevProducts, prevOrders, prevItems
		sqlPath, outPath = prevSQLPath, prevOutPath
	})

	dataDir = t.TempDir()
	dbPath = filepath.Join(t.TempDir(), "ecom.db")
	verbose = false
	seed = 1
	customerCount, productCount, orderCount, itemTarget = 8, 6, 10, 25
}

func TestRunGenerate_Verbose(t *testing.T) {
	setTestFlags(t)
	verbose = true

	require.NoError(t, runGenerate())

	for _, name := range []string{
		dataset.CustomersFile, dataset.ProductsFile, dataset.OrdersFile,
		dataset.OrderItemsFile, dataset.PaymentsFile,
	} {
		assert.FileExists(t, filepath.Join(dataDir, name))
	}
}

func TestRunLoad_ReturnsErrorWithoutPrintingTwice(t *testing.T) {
	setTestFlags(t)

	// No datasets were generated, so the load must surface the missing
	// input through its return value alone.
	err := runLoad()
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrMissingInput)
}

func TestRunReport_CreatesOutputDirectory(t *testing.T) {
	setTestFlags(t)

	require.NoError(t, runGenerate())
	require.NoError(t, runLoad())

	sqlPath = filepath.Join(t.TempDir(), "report.sql")
	require.NoError(t, os.WriteFile(sqlPath,
		[]byte("SELECT category, COUNT(*) AS products FROM products GROUP BY category"), 0o644))

	outPath = filepath.Join(t.TempDir(), "nested", "reports", "final_report.csv")
	require.NoError(t, runReport())
	assert.FileExists(t, outPath)
}
