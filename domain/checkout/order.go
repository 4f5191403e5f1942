package checkout

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrCustomerIDRequired  = errors.New("customer id is required")
	ErrItemsRequired       = errors.New("items are required")
	ErrQuantityNotPositive = errors.New("quantity must be greater than 0")
	ErrNotFound            = errors.New("order not found")
	ErrAlreadyExists       = errors.New("order already exists")
)

type Store interface {
	Create(ctx context.Context, o *Order) error
	// Place stores a new order together with the buyer's reward points.
	Place(ctx context.Context, o *Order, c *customer.Customer) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Order, error)
}

type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func NewOrderItem(id, name string, price float64, productID string, quantity int) OrderItem {
	return OrderItem{
		ID:        id,
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
	}
}

func (i OrderItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}

type Order struct {
	id         string
	customerID string
	items      []OrderItem
}

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{id: id, customerID: customerID, items: append([]OrderItem(nil), items...)}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) ID() string { return o.id }
func (o *Order) CustomerID() string { return o.customerID }
func (o *Order) Items() []OrderItem { return append([]OrderItem(nil), o.items...) }

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}

	return total
}

func (o *Order) Validate() error {
	switch {
	case o.id == "":
		return ErrIDRequired
	case o.customerID == "":
		return ErrCustomerIDRequired
	case len(o.items) == 0:
		return ErrItemsRequired
	}

	for _, item := range o.items {
		if item.Quantity <= 0 {
			return ErrQuantityNotPositive
		}
	}

	return nil
}

func (o *Order) ChangeCustomer(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDRequired
	}
	o.customerID = customerID

	return nil
}

func (o *Order) AddItem(item OrderItem) error {
	if item.Quantity <= 0 {
		return ErrQuantityNotPositive
	}
	o.items = append(o.items, item)

	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string      `json:"id"`
		CustomerID string      `json:"customer_id"`
		Items      []OrderItem `json:"items"`
		Total      float64     `json:"total"`
	}{
		ID:         o.id,
		CustomerID: o.customerID,
		Items:      o.items,
		Total:      o.Total(),
	})
}
