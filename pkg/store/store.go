// Package store loads the generated datasets into a SQLite database and
// runs the aggregate report against it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/marshallshelly/shopforge/pkg/dataset"
)

// Table describes one of the five dataset tables: where its rows come
// from, how it is created, and how rows are inserted.
type Table struct {
	Name    string
	CSVFile string
	Schema  string
	Insert  string
	Columns int
}

// Tables lists the dataset tables in referential dependency order.
// Loads walk it forward; drops walk it backward.
var Tables = []Table{
	{
		Name:    "customers",
		CSVFile: dataset.CustomersFile,
		Schema: `CREATE TABLE customers (
			customer_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			country TEXT NOT NULL
		)`,
		Insert:  `INSERT INTO customers (customer_id, name, email, country) VALUES (?, ?, ?, ?)`,
		Columns: 4,
	},
	{
		Name:    "products",
		CSVFile: dataset.ProductsFile,
		Schema: `CREATE TABLE products (
			product_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL
		)`,
		Insert:  `INSERT INTO products (product_id, name, category, price) VALUES (?, ?, ?, ?)`,
		Columns: 4,
	},
	{
		Name:    "orders",
		CSVFile: dataset.OrdersFile,
		Schema: `CREATE TABLE orders (
			order_id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			order_date TEXT NOT NULL,
			status TEXT NOT NULL,
			FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
		)`,
		Insert:  `INSERT INTO orders (order_id, customer_id, order_date, status) VALUES (?, ?, ?, ?)`,
		Columns: 4,
	},
	{
		Name:    "order_items",
		CSVFile: dataset.OrderItemsFile,
		Schema: `CREATE TABLE order_items (
			item_id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK(quantity > 0),
			FOREIGN KEY (order_id) REFERENCES orders(order_id),
			FOREIGN KEY (product_id) REFERENCES products(product_id)
		)`,
		Insert:  `INSERT INTO order_items (item_id, order_id, product_id, quantity) VALUES (?, ?, ?, ?)`,
		Columns: 4,
	},
	{
		Name:    "payments",
		CSVFile: dataset.PaymentsFile,
		Schema: `CREATE TABLE payments (
			payment_id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			mode TEXT NOT NULL,
			payment_date TEXT NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(order_id)
		)`,
		Insert:  `INSERT INTO payments (payment_id, order_id, amount, mode, payment_date) VALUES (?, ?, ?, ?, ?)`,
		Columns: 5,
	},
}

// Open opens the SQLite database at path with foreign keys enforced,
// creating the parent directory if needed.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=1")
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return db, nil
}
