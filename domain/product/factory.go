package product

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUnsupportedKind = errors.New("product type not supported")

func New(kind Kind, name string, price float64) (*Product, error) {
	switch kind {
	case KindA, KindB:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	p, err := NewProduct(uuid.NewString(), name, price)
	if err != nil {
		return nil, err
	}
	p.kind = kind

	return p, nil
}
