package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/SeaCloudHub/storefront/adapters/httpserver/model"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	mapperInstance *mapper
	onceMapper     sync.Once
)

type mapper struct{}

func NewMapperService() *mapper {
	onceMapper.Do(func() {
		mapperInstance = &mapper{}
	})
	return mapperInstance
}

func (s *mapper) ToAddress(request model.AddressRequest) (customer.Address, error) {
	return customer.NewAddress(request.Street, request.Number, request.Zip, request.City)
}

func (s *mapper) ToProduct(request model.CreateProductRequest) (*product.Product, error) {
	kind := product.Kind(request.Kind)
	if kind == "" {
		kind = product.KindA
	}

	return product.New(kind, request.Name, request.Price)
}

// ToOrderItem snapshots the product's current name and listed price.
func (s *mapper) ToOrderItem(p *product.Product, quantity int) checkout.OrderItem {
	return checkout.NewOrderItem(gonanoid.Must(), p.Name(), p.Price(), p.ID(), quantity)
}

// RecordToProduct maps a "kind,name,price" CSV record.
func (s *mapper) RecordToProduct(record []string) (interface{}, error) {
	if len(record) != 3 {
		return nil, fmt.Errorf("expected 3 fields, got %d", len(record))
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", record[2], err)
	}

	return s.ToProduct(model.CreateProductRequest{
		Kind:  strings.ToLower(strings.TrimSpace(record[0])),
		Name:  strings.TrimSpace(record[1]),
		Price: price,
	})
}
