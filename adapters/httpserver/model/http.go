package model

import "github.com/SeaCloudHub/storefront/pkg/validation"

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info"`
}

type ListRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *ListRequest) Validate() error {
	if r.Limit == 0 {
		r.Limit = 10
	}

	return validation.Validate().Struct(r)
}
