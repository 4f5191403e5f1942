package product

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SeaCloudHub/storefront/pkg/pagination"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNameRequired     = errors.New("name is required")
	ErrPriceNotPositive = errors.New("price must be greater than zero")
	ErrNotFound         = errors.New("product not found")
	ErrAlreadyExists    = errors.New("product already exists")
)

type Kind string

const (
	KindA Kind = "a"
	// KindB products are listed at twice their stored price.
	KindB Kind = "b"
)

type Store interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Product, error)
}

type Product struct {
	id    string
	name  string
	price float64
	kind  Kind
}

func NewProduct(id, name string, price float64) (*Product, error) {
	p := &Product{id: id, name: name, price: price, kind: KindA}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func Restore(id, name string, price float64, kind Kind) *Product {
	if kind == "" {
		kind = KindA
	}

	return &Product{id: id, name: name, price: price, kind: kind}
}

func (p *Product) ID() string { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Kind() Kind { return p.kind }
func (p *Product) BasePrice() float64 { return p.price }

func (p *Product) Price() float64 {
	if p.kind == KindB {
		return p.price * 2
	}

	return p.price
}

func (p *Product) Validate() error {
	switch {
	case p.id == "":
		return ErrIDRequired
	case p.name == "":
		return ErrNameRequired
	case p.price <= 0:
		return ErrPriceNotPositive
	}

	return nil
}

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	p.name = name

	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price <= 0 {
		return ErrPriceNotPositive
	}
	p.price = price

	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Kind  Kind    `json:"kind"`
	}{
		ID:    p.id,
		Name:  p.name,
		Price: p.Price(),
		Kind:  p.kind,
	})
}
