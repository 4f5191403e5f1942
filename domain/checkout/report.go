package checkout

import "context"

type CustomerSales struct {
	CustomerID string  `json:"customer_id" db:"customer_id"`
	Orders     int     `json:"orders" db:"orders"`
	Total      float64 `json:"total" db:"total_sales"`
}

type ReportStore interface {
	// SalesByCustomer returns per-customer totals of at least minTotal,
	// biggest first.
	SalesByCustomer(ctx context.Context, minTotal float64) ([]CustomerSales, error)
}
