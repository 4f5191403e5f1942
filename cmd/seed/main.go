// Command seed migrates the database and stores a demo customer and catalog.
package main

import (
	"context"
	"log"

	"github.com/SeaCloudHub/storefront/adapters/postgrestore"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/SeaCloudHub/storefront/pkg/config"
	"github.com/SeaCloudHub/storefront/pkg/logger"
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

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		applog.Fatal(err)
	}

	n, err := postgrestore.Migrate(sqlDB)
	if err != nil {
		applog.Fatalf("cannot migrate: %v", err)
	}
	applog.Infow("migrations applied", "count", n)

	ctx := context.Background()
	customerStore := postgrestore.NewCustomerStore(db)
	productStore := postgrestore.NewProductStore(db)

	address, err := customer.NewAddress("Street 1", 123, "13330-250", "São Paulo")
	if err != nil {
		applog.Fatal(err)
	}

	c, err := customer.NewWithAddress("Demo customer", address)
	if err != nil {
		applog.Fatal(err)
	}

	if err := c.Activate(); err != nil {
		applog.Fatal(err)
	}

	if err := customerStore.Create(ctx, c); err != nil {
		applog.Fatalf("cannot create customer: %v", err)
	}
	applog.Infow("customer created", "id", c.ID(), "name", c.Name())

	catalog := []struct {
		kind  product.Kind
		name  string
		price float64
	}{
		{product.KindA, "Chair", 49.9},
		{product.KindA, "Lamp", 19.9},
		{product.KindB, "Table", 120},
	}

	for _, item := range catalog {
		p, err := product.New(item.kind, item.name, item.price)
		if err != nil {
			applog.Fatal(err)
		}

		if err := productStore.Create(ctx, p); err != nil {
			applog.Fatalf("cannot create product: %v", err)
		}
		applog.Infow("product created", "id", p.ID(), "name", p.Name(), "price", p.Price())
	}
}
