package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SeaCloudHub/storefront/adapters/event"
	"github.com/SeaCloudHub/storefront/adapters/event/listeners"
	"github.com/SeaCloudHub/storefront/adapters/httpserver"
	"github.com/SeaCloudHub/storefront/adapters/notificationhub"
	"github.com/SeaCloudHub/storefront/adapters/postgrestore"
	"github.com/SeaCloudHub/storefront/adapters/redisstore"
	"github.com/SeaCloudHub/storefront/adapters/services"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/pkg/config"
	"github.com/SeaCloudHub/storefront/pkg/logger"
	"github.com/SeaCloudHub/storefront/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}

	applog, err := logger.NewAppLogger(cfg)
	if err != nil {
		log.Fatalf("cannot init logger: %v\n", err)
	}
	defer logger.Sync(applog)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	if cfg.DB.Migrate {
		sqlDB, err := db.DB()
		if err != nil {
			applog.Fatal(err)
		}

		n, err := postgrestore.Migrate(sqlDB)
		if err != nil {
			applog.Fatal(err)
		}
		applog.Infow("migrations applied", "count", n)
	}

	sqlxDB, err := postgrestore.NewSQLX(db)
	if err != nil {
		applog.Fatal(err)
	}

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	notificationHub, err := notificationhub.NewNotificationHub(cfg)
	if err != nil {
		applog.Fatal(err)
	}

	server, err := httpserver.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}

	// event bus, fully registered before serving
	dispatcher := event.NewEventDispatcher()

	metricsListener, err := listeners.NewMetricsListener(prometheus.DefaultRegisterer)
	if err != nil {
		applog.Fatal(err)
	}
	publishListener := listeners.NewPublishListener(redisstore.NewRedisClient(redis), cfg.Events.Channel)

	dispatcher.Register(customer.CreatedEventName, listeners.NewCustomerCreatedLogListener(applog, "customer created (first handler)"))
	dispatcher.Register(customer.CreatedEventName, listeners.NewCustomerCreatedLogListener(applog, "customer created (second handler)"))
	dispatcher.Register(customer.AddressChangedEventName, listeners.NewAddressChangedLogListener(applog))
	dispatcher.Register(product.CreatedEventName, listeners.NewProductCreatedNotifyListener(notificationHub))
	dispatcher.Register(checkout.PlacedEventName, listeners.NewOrderPlacedLogListener(applog))

	for _, name := range []string{
		customer.CreatedEventName,
		customer.AddressChangedEventName,
		product.CreatedEventName,
		checkout.PlacedEventName,
	} {
		dispatcher.Register(name, metricsListener)
		dispatcher.Register(name, publishListener)
	}

	server.EventDispatcher = dispatcher

	// store adapters
	server.CustomerStore = postgrestore.NewCustomerStore(db)
	server.ProductStore = postgrestore.NewProductStore(db)
	server.OrderStore = postgrestore.NewOrderStore(db)
	server.ReportStore = postgrestore.NewOrderReportStore(sqlxDB)

	// internal services
	server.CSVService = services.NewCSVService()
	server.MapperService = services.NewMapperService()

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Info("server started!")
	applog.Fatal(http.ListenAndServe(addr, server))
}
