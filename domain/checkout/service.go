package checkout

import (
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/google/uuid"
)

// Total sums the totals of orders.
func Total(orders []*Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}

	return total
}

// PlaceOrder creates an order for c and credits half of its total as reward
// points.
func PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired
	}

	o, err := NewOrder(uuid.NewString(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	c.AddRewardPoints(o.Total() / 2)

	return o, nil
}
