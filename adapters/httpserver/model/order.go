package model

import (
	"context"

	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"github.com/SeaCloudHub/storefront/pkg/validation"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" mod:"trim" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" mod:"trim" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *CreateOrderRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ChangeOrderCustomerRequest struct {
	CustomerID string `json:"customer_id" mod:"trim" validate:"required"`
}

func (r *ChangeOrderCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ListOrdersResponse struct {
	Orders     []checkout.Order    `json:"orders"`
	Pagination pagination.PageInfo `json:"pagination"`
}

type SalesReportRequest struct {
	MinTotal float64 `query:"min_total" validate:"gte=0"`
}

func (r *SalesReportRequest) Validate() error {
	return validation.Validate().Struct(r)
}
