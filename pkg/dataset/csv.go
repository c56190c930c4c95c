package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marshallshelly/shopforge/pkg/csvio"
)

// File names of the five emitted datasets.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	PaymentsFile   = "payments.csv"
)

// Column orders of the emitted files.
var (
	CustomerColumns  = []string{"customer_id", "name", "email", "country"}
	ProductColumns   = []string{"product_id", "name", "category", "price"}
	OrderColumns     = []string{"order_id", "customer_id", "order_date", "status"}
	OrderItemColumns = []string{"item_id", "order_id", "product_id", "quantity"}
	PaymentColumns   = []string{"payment_id", "order_id", "amount", "mode", "payment_date"}
)

// Record returns the customer's CSV fields in column order.
func (c Customer) Record() []string {
	return []string{c.ID, c.Name, c.Email, c.Country}
}

// Record returns the product's CSV fields; the price carries exactly two
// decimal digits.
func (p Product) Record() []string {
	return []string{p.ID, p.Name, p.Category, p.Price.StringFixed(2)}
}

// Record returns the order's CSV fields with an ISO-8601 date.
func (o Order) Record() []string {
	return []string{o.ID, o.CustomerID, o.OrderDate.Format(DateFormat), o.Status}
}

// Record returns the item's CSV fields.
func (i OrderItem) Record() []string {
	return []string{i.ID, i.OrderID, i.ProductID, strconv.Itoa(i.Quantity)}
}

// Record returns the payment's CSV fields.
func (p Payment) Record() []string {
	return []string{p.ID, p.OrderID, p.Amount.StringFixed(2), p.Mode, p.PaymentDate.Format(DateFormat)}
}

func recordsOf[T interface{ Record() []string }](entities []T) [][]string {
	records := make([][]string, 0, len(entities))
	for _, e := range entities {
		records = append(records, e.Record())
	}
	return records
}

// WriteCSVs writes the five dataset files into dir, creating it if
// needed. Existing files are overwritten.
func (d *Dataset) WriteCSVs(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{CustomersFile, CustomerColumns, recordsOf(d.Customers)},
		{ProductsFile, ProductColumns, recordsOf(d.Products)},
		{OrdersFile, OrderColumns, recordsOf(d.Orders)},
		{OrderItemsFile, OrderItemColumns, recordsOf(d.Items)},
		{PaymentsFile, PaymentColumns, recordsOf(d.Payments)},
	}
	for _, f := range files {
		if err := csvio.WriteFile(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return err
		}
	}
	return nil
}
