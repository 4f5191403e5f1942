package app

import (
	"context"

	"github.com/labstack/echo/v4"
)

// NewEchoContextAdapter returns the request context carried by c, so store
// calls are cancelled with the request.
func NewEchoContextAdapter(c echo.Context) context.Context {
	return c.Request().Context()
}
