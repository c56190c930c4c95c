package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCustomers(t *testing.T) {
	src := NewSource(11)
	customers, err := GenerateCustomers(src, 200)
	require.NoError(t, err)
	require.Len(t, customers, 200)

	idPattern := regexp.MustCompile(`^CUST\d{5}$`)
	seen := make(map[string]bool)
	for i, c := range customers {
		assert.Equal(t, fmt.Sprintf("CUST%05d", i+1), c.ID)
		assert.Regexp(t, idPattern, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.Equal(t, "India", c.Country)
		assert.False(t, seen[c.Email], "duplicate email %s", c.Email)
		seen[c.Email] = true
	}
}

func TestGenerateProducts(t *testing.T) {
	src := NewSource(11)
	products := GenerateProducts(src, 150)
	require.Len(t, products, 150)

	minPrice := decimal.New(minPricePaise, -2)
	maxPrice := decimal.New(maxPricePaise, -2)
	for i, p := range products {
		assert.Equal(t, fmt.Sprintf("PROD%05d", i+1), p.ID)
		assert.True(t, p.Price.IsPositive())
		assert.True(t, p.Price.GreaterThanOrEqual(minPrice), "price %s below range", p.Price)
		assert.True(t, p.Price.LessThanOrEqual(maxPrice), "price %s above range", p.Price)
		// fixed-point with exactly 2 decimals
		assert.True(t, p.Price.Equal(p.Price.Round(2)))
		assert.True(t, slices.Contains(ProductCategories, p.Category))
	}
}

func TestGenerateOrders(t *testing.T) {
	src := NewSource(11)
	customers, err := GenerateCustomers(src, 50)
	require.NoError(t, err)

	today := time.Date(2024, 9, 1, 15, 30, 0, 0, time.UTC)
	orders, err := GenerateOrders(src, 300, customers, today)
	require.NoError(t, err)
	require.Len(t, orders, 300)

	customerIDs := make(map[string]bool, len(customers))
	for _, c := range customers {
		customerIDs[c.ID] = true
	}

	windowStart := time.Date(2023, 9, 2, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	for i, o := range orders {
		assert.Equal(t, fmt.Sprintf("ORD%06d", i+1), o.ID)
		assert.True(t, customerIDs[o.CustomerID], "order %s references unknown customer %s", o.ID, o.CustomerID)
		assert.False(t, o.OrderDate.Before(windowStart), "order date %s before window", o.OrderDate)
		assert.False(t, o.OrderDate.After(windowEnd), "order date %s after window", o.OrderDate)
		assert.True(t, slices.Contains(OrderStatuses, o.Status))
	}
}

func TestGenerateOrders_NoCustomers(t *testing.T) {
	_, err := GenerateOrders(NewSource(1), 10, nil, time.Now())
	assert.ErrorIs(t, err, ErrNoCustomers)
}

func TestGeneratePayments(t *testing.T) {
	src := NewSource(7)
	orders := testOrders(20)
	products := testProducts(10)

	alloc, err := AllocateItems(src, orders, products, 60, DefaultAllocConfig)
	require.NoError(t, err)

	payments := GeneratePayments(src, orders, alloc.Totals)
	require.Len(t, payments, len(orders))

	for i, p := range payments {
		order := orders[i]
		assert.Equal(t, fmt.Sprintf("PAY%06d", i+1), p.ID)
		assert.Equal(t, order.ID, p.OrderID)
		assert.True(t, p.Amount.Equal(alloc.Totals[order.ID].Round(2)),
			"payment %s amount %s != total %s", p.ID, p.Amount, alloc.Totals[order.ID])
		assert.False(t, p.PaymentDate.Before(order.OrderDate))
		assert.False(t, p.PaymentDate.After(order.OrderDate.AddDate(0, 0, 3)))
		assert.True(t, slices.Contains(PaymentModes, p.Mode))
	}
}

func TestGenerate_DrawsCountsFromRange(t *testing.T) {
	cfg := Config{
		Seed:    3,
		MinRows: 5,
		MaxRows: 9,
		Today:   time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	ds, err := Generate(cfg)
	require.NoError(t, err)

	for name, n := range map[string]int{
		"customers": len(ds.Customers),
		"products":  len(ds.Products),
		"orders":    len(ds.Orders),
	} {
		assert.GreaterOrEqual(t, n, 5, "%s below range", name)
		assert.LessOrEqual(t, n, 9, "%s above range", name)
	}
	assert.Equal(t, ds.EffectiveTarget, len(ds.Items))
	assert.Len(t, ds.Payments, len(ds.Orders))
}

func TestGenerate_ByteIdenticalOutputForSameSeed(t *testing.T) {
	cfg := Config{
		Seed:      2024,
		Customers: 30,
		Products:  20,
		Orders:    40,
		Items:     90,
		Today:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	dirA := t.TempDir()
	dirB := t.TempDir()

	for _, dir := range []string{dirA, dirB} {
		ds, err := Generate(cfg)
		require.NoError(t, err)
		require.NoError(t, ds.WriteCSVs(dir))
	}

	for _, name := range []string{CustomersFile, ProductsFile, OrdersFile, OrderItemsFile, PaymentsFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between identical runs", name)
	}
}

func TestGenerate_CoercionIsObservable(t *testing.T) {
	cfg := Config{
		Seed:      1,
		Customers: 5,
		Products:  5,
		Orders:    10,
		Items:     4,
		Today:     time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	ds, err := Generate(cfg)
	require.NoError(t, err)

	assert.True(t, ds.Coerced)
	assert.Equal(t, 10, ds.EffectiveTarget)
	assert.Len(t, ds.Items, 10)
}
