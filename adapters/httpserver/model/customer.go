package model

import (
	"context"

	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"github.com/SeaCloudHub/storefront/pkg/validation"
)

type AddressRequest struct {
	Street string `json:"street" mod:"trim" validate:"required,max=255"`
	Number int    `json:"number" validate:"required,gt=0"`
	Zip    string `json:"zip" mod:"trim" validate:"required,max=32"`
	City   string `json:"city" mod:"trim" validate:"required,max=255"`
}

func (r *AddressRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type CreateCustomerRequest struct {
	Name    string          `json:"name" mod:"trim" validate:"required,max=255"`
	Address *AddressRequest `json:"address"`
}

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ListCustomersResponse struct {
	Customers  []customer.Customer `json:"customers"`
	Pagination pagination.PageInfo `json:"pagination"`
}
