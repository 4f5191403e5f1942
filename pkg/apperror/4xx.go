package apperror

import (
	"net/http"
)

const (
	BindingCode        = "400001"
	ValidationCode     = "400002"
	DomainRuleCode     = "400003"
	InvalidFileCode    = "400004"
	EntityNotFoundCode = "404005"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

func ErrDomainRule(err error) Error {
	return NewError(err, http.StatusBadRequest, DomainRuleCode, "Business rule violated")
}

func ErrInvalidFile(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidFileCode, "Invalid file")
}

// 404 Not Found
func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "Entity not found")
}
