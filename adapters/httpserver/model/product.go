package model

import (
	"context"

	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"github.com/SeaCloudHub/storefront/pkg/validation"
)

type CreateProductRequest struct {
	Kind  string  `json:"kind" mod:"trim,lcase" validate:"omitempty,oneof=a b"`
	Name  string  `json:"name" mod:"trim" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gt=0"`
}

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type UpdateProductRequest struct {
	Name  string  `json:"name" mod:"trim" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gt=0"`
}

func (r *UpdateProductRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ListProductsResponse struct {
	Products   []product.Product   `json:"products"`
	Pagination pagination.PageInfo `json:"pagination"`
}
