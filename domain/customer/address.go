package customer

import (
	"errors"
	"fmt"
)

var (
	ErrStreetRequired = errors.New("street is required")
	ErrNumberRequired = errors.New("number is required")
	ErrZipRequired    = errors.New("zip is required")
	ErrCityRequired   = errors.New("city is required")
)

// Address is a value object; change a customer's address by building a new one.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip, city string) (Address, error) {
	a := Address{street: street, number: number, zip: zip, city: city}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int { return a.number }
func (a Address) Zip() string { return a.zip }
func (a Address) City() string { return a.city }

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Validate() error {
	switch {
	case a.street == "":
		return ErrStreetRequired
	case a.number <= 0:
		return ErrNumberRequired
	case a.zip == "":
		return ErrZipRequired
	case a.city == "":
		return ErrCityRequired
	}

	return nil
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
