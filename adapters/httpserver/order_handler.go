package httpserver

import (
	"github.com/SeaCloudHub/storefront/adapters/httpserver/model"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/pkg/app"
	"github.com/SeaCloudHub/storefront/pkg/apperror"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceOrder prices every item from the product catalog, stores the order
// and credits the customer's reward points.
func (s *Server) PlaceOrder(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.CreateOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerStore.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	items := make([]checkout.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		p, err := s.ProductStore.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return s.error(c, apperror.ErrEntityNotFound(errors.Wrap(err, item.ProductID)))
			}

			return s.error(c, apperror.ErrInternalServer(err))
		}

		items = append(items, s.MapperService.ToOrderItem(p, item.Quantity))
	}

	order, err := checkout.PlaceOrder(cust, items)
	if err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if err := s.OrderStore.Place(ctx, order, cust); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	s.notify(c, checkout.NewPlacedEvent(order))

	return s.success(c, order)
}

func (s *Server) ListOrders(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.ListRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	pager := pagination.NewPager(req.Page, req.Limit)

	orders, err := s.OrderStore.List(ctx, pager)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.ListOrdersResponse{
		Orders:     orders,
		Pagination: pager.PageInfo(),
	})
}

func (s *Server) GetOrder(c echo.Context) error {
	ctx := app.NewEchoContextAdapter(c)

	order, err := s.OrderStore.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, checkout.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, order)
}

func (s *Server) ChangeOrderCustomer(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.ChangeOrderCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderStore.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, checkout.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	if _, err := s.CustomerStore.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	if err := order.ChangeCustomer(req.CustomerID); err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if err := s.OrderStore.Update(ctx, order); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, order)
}

func (s *Server) SalesReport(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.SalesReportRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	sales, err := s.ReportStore.SalesByCustomer(ctx, req.MinTotal)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, sales)
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.PlaceOrder)
	router.GET("", s.ListOrders)
	router.GET("/report", s.SalesReport)
	router.GET("/:id", s.GetOrder)
	router.PUT("/:id/customer", s.ChangeOrderCustomer)
}
