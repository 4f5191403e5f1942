package customer

import (
	"context"
	"errors"

	"github.com/SeaCloudHub/storefront/pkg/pagination"
)

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNameRequired     = errors.New("name is required")
	ErrAddressMandatory = errors.New("address is mandatory to activate a customer")
	ErrNotFound         = errors.New("customer not found")
	ErrAlreadyExists    = errors.New("customer already exists")
)

type Store interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, pager *pagination.Pager) ([]Customer, error)
}

type Customer struct {
	id           string
	name         string
	address      Address
	active       bool
	rewardPoints float64
}

func NewCustomer(id, name string) (*Customer, error) {
	c := &Customer{id: id, name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Restore rebuilds a customer from stored state without emitting anything.
func Restore(id, name string, address Address, active bool, rewardPoints float64) *Customer {
	return &Customer{
		id:           id,
		name:         name,
		address:      address,
		active:       active,
		rewardPoints: rewardPoints,
	}
}

func (c *Customer) ID() string { return c.id }
func (c *Customer) Name() string { return c.name }
func (c *Customer) Address() Address { return c.address }
func (c *Customer) IsActive() bool { return c.active }
func (c *Customer) RewardPoints() float64 { return c.rewardPoints }

func (c *Customer) Validate() error {
	if c.id == "" {
		return ErrIDRequired
	}
	if c.name == "" {
		return ErrNameRequired
	}

	return nil
}

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	c.name = name

	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address

	return nil
}

func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressMandatory
	}
	c.active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points float64) {
	c.rewardPoints += points
}
