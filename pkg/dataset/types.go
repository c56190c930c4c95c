// Package dataset generates the synthetic e-commerce entity sets:
// customers, products, orders, order items, and payments.
package dataset

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the ISO-8601 date layout used in all emitted files.
const DateFormat = "2006-01-02"

// ProductCategories is the fixed category enum for products.
var ProductCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Kitchen",
	"Beauty",
	"Sports",
	"Books",
	"Grocery",
	"Toys",
}

// OrderStatuses is the fixed status enum for orders.
var OrderStatuses = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}

// PaymentModes is the fixed mode enum for payments.
var PaymentModes = []string{"UPI", "Credit Card", "Debit Card", "Net Banking", "Wallet", "COD"}

// Customer is a generated customer with a globally unique email.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Country string
}

// Product is a generated product with a fixed-point unit price.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
}

// Order references a customer and carries a historical date and status.
type Order struct {
	ID         string
	CustomerID string
	OrderDate  time.Time
	Status     string
}

// OrderItem is one line of an order, referencing a product.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
}

// Payment settles exactly one order for its accumulated item total.
type Payment struct {
	ID          string
	OrderID     string
	Amount      decimal.Decimal
	Mode        string
	PaymentDate time.Time
}
