package dataset

import "errors"

var (
	// ErrEmailsExhausted is returned when no fresh unique email can be
	// derived within the retry bound.
	ErrEmailsExhausted = errors.New("unique email pool exhausted")

	// ErrNoCustomers is returned when orders are requested without any
	// customers to reference.
	ErrNoCustomers = errors.New("no customers to assign orders to")

	// ErrNoOrders is returned when items are requested without any orders
	// to hold them.
	ErrNoOrders = errors.New("no orders to allocate items to")

	// ErrNoProducts is returned when items are requested without any
	// products to draw from.
	ErrNoProducts = errors.New("no products to allocate items from")
)
