package httpserver

import (
	"github.com/SeaCloudHub/storefront/adapters/httpserver/model"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/pkg/app"
	"github.com/SeaCloudHub/storefront/pkg/apperror"
	"github.com/SeaCloudHub/storefront/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.CreateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	p, err := s.MapperService.ToProduct(req)
	if err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if err := s.ProductStore.Create(ctx, p); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	s.notify(c, product.NewCreatedEvent(p))

	return s.success(c, p)
}

// ImportProducts creates one product per row of a "kind,name,price" CSV
// upload. Rows are validated before anything is stored.
func (s *Server) ImportProducts(c echo.Context) error {
	ctx := app.NewEchoContextAdapter(c)

	file, _, err := c.Request().FormFile("file")
	if err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}
	defer file.Close()

	ok, err := app.IsCSV(file)
	if err != nil {
		return s.error(c, apperror.ErrInvalidFile(err))
	}

	if !ok {
		return s.error(c, apperror.ErrInvalidFile(errors.New("file is not a CSV")))
	}

	entities, err := s.CSVService.CsvToEntities(file, s.MapperService.RecordToProduct)
	if err != nil {
		return s.error(c, apperror.ErrInvalidFile(err))
	}

	products := make([]*product.Product, 0, len(entities))
	for _, entity := range entities {
		p, ok := entity.(*product.Product)
		if !ok {
			return s.error(c, apperror.ErrInternalServer(errors.Errorf("unexpected entity %T", entity)))
		}

		if err := s.ProductStore.Create(ctx, p); err != nil {
			return s.error(c, apperror.ErrInternalServer(err))
		}

		s.notify(c, product.NewCreatedEvent(p))
		products = append(products, p)
	}

	return s.success(c, products)
}

func (s *Server) ListProducts(c echo.Context) error {
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

	products, err := s.ProductStore.List(ctx, pager)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, model.ListProductsResponse{
		Products:   products,
		Pagination: pager.PageInfo(),
	})
}

func (s *Server) GetProduct(c echo.Context) error {
	ctx := app.NewEchoContextAdapter(c)

	p, err := s.ProductStore.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, p)
}

func (s *Server) UpdateProduct(c echo.Context) error {
	var (
		ctx = app.NewEchoContextAdapter(c)
		req model.UpdateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	p, err := s.ProductStore.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return s.error(c, apperror.ErrEntityNotFound(err))
		}

		return s.error(c, apperror.ErrInternalServer(err))
	}

	if err := p.ChangeName(req.Name); err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if err := p.ChangePrice(req.Price); err != nil {
		return s.error(c, apperror.ErrDomainRule(err))
	}

	if err := s.ProductStore.Update(ctx, p); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return s.success(c, p)
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.POST("/import", s.ImportProducts)
	router.GET("", s.ListProducts)
	router.GET("/:id", s.GetProduct)
	router.PUT("/:id", s.UpdateProduct)
}
