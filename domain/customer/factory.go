package customer

import "github.com/google/uuid"

func New(name string) (*Customer, error) {
	return NewCustomer(uuid.NewString(), name)
}

func NewWithAddress(name string, address Address) (*Customer, error) {
	c, err := New(name)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	return c, nil
}
