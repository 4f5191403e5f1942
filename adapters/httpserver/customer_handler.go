package httpserver

import (
	"github.com/SeaCloudHub/storefront/adapters/httpserver/model"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/pkg/app"
	"github.com/SeaCloudHub/storefront/pkg/apperror"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := customer.New(req.Name)
	if err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if req.Address != nil {
		address, err := s.MapperService.ToAddress(*req.Address)
		if err != nil {
			return s.error(c, apperror.ErrDomainRule(err))
		}

		if err := cust.ChangeAddress(address); err != nil {
			return s.error(c, apperror.ErrDomainRule(err))
		}
	}

	if err := s.CustomerStore.Create(ctx, cust); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	s.notify(c, customer.NewCreatedEvent(cust))

	return s.success(c, cust)
}

func (s *Server) ListCustomers(c echo.Context) error {
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

	customers, err := s.CustomerStore.List(ctx, pager)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.ListCustomersResponse{
		Customers:  customers,
		Pagination: pager.PageInfo(),
	})
}

func (s *Server) GetCustomer(c echo.Context) error {
	ctx := app.NewEchoContextAdapter(c)

	cust, err := s.CustomerStore.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, cust)
}

func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.AddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	address, err := s.MapperService.ToAddress(req)
	if err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	cust, err := s.CustomerStore.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	if err := cust.ChangeAddress(address); err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if err := s.CustomerStore.Update(ctx, cust); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	s.notify(c, customer.NewAddressChangedEvent(cust))

	return s.success(c, cust)
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
}
