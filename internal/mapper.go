package internal

import (
	"github.com/SeaCloudHub/storefront/adapters/httpserver/model"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
)

type Mapper interface {
	ToAddress(request model.AddressRequest) (customer.Address, error)

	ToProduct(request model.CreateProductRequest) (*product.Product, error)

	ToOrderItem(p *product.Product, quantity int) checkout.OrderItem

	RecordToProduct(record []string) (interface{}, error)
}
