package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AllocConfig bounds the per-order draws during item allocation.
type AllocConfig struct {
	// SoftCap is the most items a non-final order may receive in a
	// normal draw. The final order ignores it to hit the target exactly.
	SoftCap int
	// MaxQuantity is the upper bound for a single item line's quantity.
	MaxQuantity int
}

// DefaultAllocConfig mirrors the historical constants.
var DefaultAllocConfig = AllocConfig{SoftCap: 5, MaxQuantity: 5}

// Allocation is the result of distributing items across orders.
type Allocation struct {
	Items  []OrderItem
	Totals map[string]decimal.Decimal

	// EffectiveTarget is the item count actually allocated: the caller's
	// target raised to the order count when it fell below it.
	EffectiveTarget int
	// Coerced reports whether that raise happened.
	Coerced bool
}

// AllocateItems distributes exactly max(target, len(orders)) order items
// across the given orders in a single forward pass, guaranteeing every
// order at least one item. Products and quantities are drawn uniformly
// with replacement; each order's monetary total accumulates price times
// quantity in fixed-point.
//
// The pass keeps one slot in reserve for every order not yet processed,
// which is what makes an exact total reachable without backtracking: a
// non-final order may take at most items_left - orders_remaining, and the
// final order absorbs whatever is left.
func AllocateItems(src *Source, orders []Order, products []Product, target int, cfg AllocConfig) (*Allocation, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	if cfg.SoftCap < 1 {
		cfg.SoftCap = DefaultAllocConfig.SoftCap
	}
	if cfg.MaxQuantity < 1 {
		cfg.MaxQuantity = DefaultAllocConfig.MaxQuantity
	}

	effective := target
	coerced := false
	if effective < len(orders) {
		effective = len(orders)
		coerced = true
	}

	items := make([]OrderItem, 0, effective)
	totals := make(map[string]decimal.Decimal, len(orders))
	for _, order := range orders {
		totals[order.ID] = decimal.Zero
	}

	for i, order := range orders {
		ordersRemaining := len(orders) - (i + 1)
		itemsLeft := effective - len(items)
		// Reserve one slot per unprocessed order so the at-least-one
		// invariant stays satisfiable; maxForOrder is therefore >= 1.
		maxForOrder := itemsLeft - ordersRemaining

		itemsForOrder := maxForOrder
		if ordersRemaining > 0 {
			itemsForOrder = src.IntBetween(1, min(cfg.SoftCap, maxForOrder))
		}

		for range itemsForOrder {
			product := Pick(src, products)
			quantity := src.IntBetween(1, cfg.MaxQuantity)
			items = append(items, OrderItem{
				ID:        fmt.Sprintf("ITEM%06d", len(items)+1),
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  quantity,
			})
			line := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
			totals[order.ID] = totals[order.ID].Add(line)
		}
	}

	if len(items) != effective {
		return nil, fmt.Errorf("allocated %d items, wanted %d", len(items), effective)
	}

	return &Allocation{
		Items:           items,
		Totals:          totals,
		EffectiveTarget: effective,
		Coerced:         coerced,
	}, nil
}
