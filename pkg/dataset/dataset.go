package dataset

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Config controls one generation run. Explicit counts of zero are drawn
// uniformly from [MinRows, MaxRows].
type Config struct {
	Seed uint64

	Customers int
	Products  int
	Orders    int
	Items     int

	MinRows int
	MaxRows int

	SoftCap     int
	MaxQuantity int

	// Today anchors the trailing order-date window. Zero means time.Now;
	// pin it for reproducible output across days.
	Today time.Time
}

// DefaultConfig matches the historical generator settings.
var DefaultConfig = Config{
	Seed:        2024,
	MinRows:     500,
	MaxRows:     1500,
	SoftCap:     5,
	MaxQuantity: 5,
}

func (c Config) withDefaults() Config {
	if c.MinRows <= 0 {
		c.MinRows = DefaultConfig.MinRows
	}
	if c.MaxRows < c.MinRows {
		c.MaxRows = max(DefaultConfig.MaxRows, c.MinRows)
	}
	if c.SoftCap < 1 {
		c.SoftCap = DefaultConfig.SoftCap
	}
	if c.MaxQuantity < 1 {
		c.MaxQuantity = DefaultConfig.MaxQuantity
	}
	if c.Today.IsZero() {
		c.Today = time.Now()
	}
	return c
}

// Dataset holds the five entity sets of one generated run.
type Dataset struct {
	Customers []Customer
	Products  []Product
	Orders    []Order
	Items     []OrderItem
	Payments  []Payment

	Totals          map[string]decimal.Decimal
	EffectiveTarget int
	Coerced         bool
}

// Generate runs the five stages in dependency order against one seeded
// Source: customers and products first, then orders, then the item
// allocation, then payments from the accumulated totals.
func Generate(cfg Config) (*Dataset, error) {
	cfg = cfg.withDefaults()
	src := NewSource(cfg.Seed)

	countFor := func(explicit int) int {
		if explicit > 0 {
			return explicit
		}
		return src.IntBetween(cfg.MinRows, cfg.MaxRows)
	}

	// All four counts are resolved before any entity is generated.
	customerCount := countFor(cfg.Customers)
	productCount := countFor(cfg.Products)
	orderCount := countFor(cfg.Orders)
	itemTarget := countFor(cfg.Items)

	customers, err := GenerateCustomers(src, customerCount)
	if err != nil {
		return nil, fmt.Errorf("generating customers: %w", err)
	}
	products := GenerateProducts(src, productCount)

	orders, err := GenerateOrders(src, orderCount, customers, cfg.Today)
	if err != nil {
		return nil, fmt.Errorf("generating orders: %w", err)
	}

	alloc, err := AllocateItems(src, orders, products, itemTarget, AllocConfig{
		SoftCap:     cfg.SoftCap,
		MaxQuantity: cfg.MaxQuantity,
	})
	if err != nil {
		return nil, fmt.Errorf("allocating order items: %w", err)
	}

	payments := GeneratePayments(src, orders, alloc.Totals)

	return &Dataset{
		Customers:       customers,
		Products:        products,
		Orders:          orders,
		Items:           alloc.Items,
		Payments:        payments,
		Totals:          alloc.Totals,
		EffectiveTarget: alloc.EffectiveTarget,
		Coerced:         alloc.Coerced,
	}, nil
}
