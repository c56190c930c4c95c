package dataset

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Unit prices are drawn in integer paise and converted to a 2-decimal
// value, keeping binary floats away from money.
const (
	minPricePaise = 19_900
	maxPricePaise = 1_999_900
)

var firstNames = []string{
	"Aarav", "Ananya", "Arjun", "Diya", "Ishaan", "Kavya", "Meera", "Nikhil",
	"Priya", "Rahul", "Riya", "Rohan", "Sanya", "Tanvi", "Vikram", "Zara",
}

var lastNames = []string{
	"Agarwal", "Bhat", "Chopra", "Desai", "Gupta", "Iyer", "Joshi", "Kapoor",
	"Mehta", "Nair", "Patel", "Rao", "Reddy", "Sharma", "Singh", "Verma",
}

var productAdjectives = []string{"Premium", "Classic", "Eco", "Smart", "Urban", "Elite", "Daily"}

var productNouns = []string{
	"Phone", "Shoes", "Mixer", "Lamp", "Watch",
	"Backpack", "Bottle", "Headphones", "Saree", "Kurta",
}

// GenerateCustomers produces count customers with sequential ids and
// globally unique emails.
func GenerateCustomers(src *Source, count int) ([]Customer, error) {
	customers := make([]Customer, 0, count)
	for idx := 1; idx <= count; idx++ {
		name := Pick(src, firstNames) + " " + Pick(src, lastNames)
		email, err := src.UniqueEmail(name)
		if err != nil {
			return nil, err
		}
		customers = append(customers, Customer{
			ID:      fmt.Sprintf("CUST%05d", idx),
			Name:    name,
			Email:   email,
			Country: "India",
		})
	}
	return customers, nil
}

// GenerateProducts produces count products with prices drawn from the
// paise range and converted to fixed-point rupees.
func GenerateProducts(src *Source, count int) []Product {
	products := make([]Product, 0, count)
	for idx := 1; idx <= count; idx++ {
		paise := src.IntBetween(minPricePaise, maxPricePaise)
		products = append(products, Product{
			ID:       fmt.Sprintf("PROD%05d", idx),
			Name:     Pick(src, productAdjectives) + " " + Pick(src, productNouns),
			Category: Pick(src, ProductCategories),
			Price:    decimal.New(int64(paise), -2),
		})
	}
	return products
}

// GenerateOrders produces count orders, each referencing a uniformly
// chosen customer (with replacement) and dated within the trailing
// 365-day window ending at today.
func GenerateOrders(src *Source, count int, customers []Customer, today time.Time) ([]Order, error) {
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	today = dateOnly(today)
	orders := make([]Order, 0, count)
	for idx := 1; idx <= count; idx++ {
		orders = append(orders, Order{
			ID:         fmt.Sprintf("ORD%06d", idx),
			CustomerID: Pick(src, customers).ID,
			OrderDate:  today.AddDate(0, 0, -src.IntBetween(0, 365)),
			Status:     Pick(src, OrderStatuses),
		})
	}
	return orders, nil
}

// GeneratePayments emits one payment per order. The amount is the order's
// accumulated item total rounded to 2 decimals; the payment date trails
// the order date by 0-3 days.
func GeneratePayments(src *Source, orders []Order, totals map[string]decimal.Decimal) []Payment {
	payments := make([]Payment, 0, len(orders))
	for idx, order := range orders {
		payments = append(payments, Payment{
			ID:          fmt.Sprintf("PAY%06d", idx+1),
			OrderID:     order.ID,
			Amount:      totals[order.ID].Round(2),
			Mode:        Pick(src, PaymentModes),
			PaymentDate: order.OrderDate.AddDate(0, 0, src.IntBetween(0, 3)),
		})
	}
	return payments
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
