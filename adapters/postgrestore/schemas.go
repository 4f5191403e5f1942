package postgrestore

import (
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
)

// Schemas lists every table model, in dependency order.
func Schemas() []interface{} {
	return []interface{}{
		&CustomerSchema{},
		&ProductSchema{},
		&OrderSchema{},
		&OrderItemSchema{},
	}
}

type CustomerSchema struct {
	ID           string  `gorm:"column:id;primaryKey;size:64"`
	Name         string  `gorm:"column:name;not null"`
	Street       string  `gorm:"column:street"`
	Number       int     `gorm:"column:number"`
	Zipcode      string  `gorm:"column:zipcode"`
	City         string  `gorm:"column:city"`
	Active       bool    `gorm:"column:active;not null;default:false"`
	RewardPoints float64 `gorm:"column:reward_points;not null;default:0"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	address := c.Address()

	return CustomerSchema{
		ID:           c.ID(),
		Name:         c.Name(),
		Street:       address.Street(),
		Number:       address.Number(),
		Zipcode:      address.Zip(),
		City:         address.City(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
}

func (s *CustomerSchema) ToDomainCustomer() *customer.Customer {
	if s == nil {
		return nil
	}

	// a customer may be stored before it has an address
	address, err := customer.NewAddress(s.Street, s.Number, s.Zipcode, s.City)
	if err != nil {
		address = customer.Address{}
	}

	return customer.Restore(s.ID, s.Name, address, s.Active, s.RewardPoints)
}

type ProductSchema struct {
	ID    string  `gorm:"column:id;primaryKey;size:64"`
	Name  string  `gorm:"column:name;not null"`
	Price float64 `gorm:"column:price;not null"`
	Kind  string  `gorm:"column:kind;size:8;not null;default:'a'"`
}

func (ProductSchema) TableName() string {
	return "products"
}

func NewProductSchema(p *product.Product) ProductSchema {
	return ProductSchema{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.BasePrice(),
		Kind:  string(p.Kind()),
	}
}

func (s *ProductSchema) ToDomainProduct() *product.Product {
	if s == nil {
		return nil
	}

	return product.Restore(s.ID, s.Name, s.Price, product.Kind(s.Kind))
}

type OrderSchema struct {
	ID         string  `gorm:"column:id;primaryKey;size:64"`
	CustomerID string  `gorm:"column:customer_id;size:64;not null;index"`
	Total      float64 `gorm:"column:total;not null"`

	Items []OrderItemSchema `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderSchema) TableName() string {
	return "orders"
}

type OrderItemSchema struct {
	ID        string  `gorm:"column:id;primaryKey;size:64"`
	OrderID   string  `gorm:"column:order_id;primaryKey;size:64"`
	ProductID string  `gorm:"column:product_id;size:64;not null"`
	Name      string  `gorm:"column:name;not null"`
	Price     float64 `gorm:"column:price;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
}

func (OrderItemSchema) TableName() string {
	return "order_items"
}

func NewOrderSchema(o *checkout.Order) OrderSchema {
	return OrderSchema{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
		Items:      newOrderItemSchemas(o),
	}
}

func newOrderItemSchemas(o *checkout.Order) []OrderItemSchema {
	items := make([]OrderItemSchema, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemSchema{
			ID:        item.ID,
			OrderID:   o.ID(),
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return items
}

func (s *OrderSchema) ToDomainOrder() (*checkout.Order, error) {
	props := checkout.Props{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      make([]checkout.ItemProps, 0, len(s.Items)),
	}

	for _, item := range s.Items {
		props.Items = append(props.Items, checkout.ItemProps{
			ID:        item.ID,
			Name:      item.Name,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return checkout.Build(props)
}
