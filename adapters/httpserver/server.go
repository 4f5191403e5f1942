package httpserver

import (
	"net/http"
	"strings"

	"github.com/SeaCloudHub/storefront/adapters/httpserver/model"
	"github.com/SeaCloudHub/storefront/domain"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/internal"
	"github.com/SeaCloudHub/storefront/pkg/app"
	"github.com/SeaCloudHub/storefront/pkg/apperror"
	"github.com/SeaCloudHub/storefront/pkg/config"
	"github.com/SeaCloudHub/storefront/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// internal services
	MapperService internal.Mapper
	CSVService    internal.CSVService

	// storage adapters
	CustomerStore customer.Store
	ProductStore  product.Store
	OrderStore    checkout.Store
	ReportStore   checkout.ReportStore

	// metrics exposed on /metrics
	Gatherer prometheus.Gatherer

	// event bus
	EventDispatcher domain.EventDispatcher
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router:   echo.New(),
		Config:   cfg,
		Logger:   logger,
		Gatherer: prometheus.DefaultGatherer,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))
	s.RegisterMetrics(s.router.Group(""))

	s.RegisterCustomerRoutes(s.router.Group("/api/customers"))
	s.RegisterProductRoutes(s.router.Group("/api/products"))
	s.RegisterOrderRoutes(s.router.Group("/api/orders"))

	return &s, nil
}

func WithGatherer(g prometheus.Gatherer) Options {
	return func(s *Server) error {
		if g == nil {
			return errors.New("nil gatherer")
		}
		s.Gatherer = g

		return nil
	}
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return strings.HasPrefix(c.Request().URL.Path, "/metrics") },
	}))
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

func (s *Server) RegisterMetrics(router *echo.Group) {
	router.GET("/metrics", func(c echo.Context) error {
		promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}).ServeHTTP(c.Response(), c.Request())
		return nil
	})
}

// notify publishes event after the write it describes has been stored, so a
// failing handler is reported but never turns the request into an error.
func (s *Server) notify(c echo.Context, event domain.Event) {
	if s.EventDispatcher == nil {
		return
	}

	if err := s.EventDispatcher.Notify(app.NewEchoContextAdapter(c), event); err != nil {
		s.Logger.Errorw("event handler failed",
			"event", event.EventName(),
			"request_id", s.requestID(c),
			"error", err,
		)
		sentry.WithContext(c).ErrorWithTags(err, map[string]string{"event": event.EventName()})
	}
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
