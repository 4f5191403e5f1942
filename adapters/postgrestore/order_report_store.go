package postgrestore

import (
	"context"
	"fmt"

	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/jmoiron/sqlx"
)

const salesByCustomerQuery = `
SELECT customer_id, COUNT(*) AS orders, SUM(total) AS total_sales
FROM orders
GROUP BY customer_id
HAVING SUM(total) >= ?
ORDER BY total_sales DESC, customer_id`

type OrderReportStore struct {
	db *sqlx.DB
}

func NewOrderReportStore(db *sqlx.DB) *OrderReportStore {
	return &OrderReportStore{db}
}

func (s *OrderReportStore) SalesByCustomer(ctx context.Context, minTotal float64) ([]checkout.CustomerSales, error) {
	result := []checkout.CustomerSales{}

	err := s.db.SelectContext(ctx, &result, s.db.Rebind(salesByCustomerQuery), minTotal)
	if err != nil {
		return nil, fmt.Errorf("cannot get sales by customer: %w", err)
	}

	return result, nil
}
