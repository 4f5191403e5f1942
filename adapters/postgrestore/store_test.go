package postgrestore_test

import (
	"context"
	"testing"

	"github.com/SeaCloudHub/storefront/adapters/inmemstore"
	"github.com/SeaCloudHub/storefront/adapters/postgrestore"
	"github.com/SeaCloudHub/storefront/domain/checkout"
	"github.com/SeaCloudHub/storefront/domain/customer"
	"github.com/SeaCloudHub/storefront/domain/product"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := inmemstore.NewConnection()
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func mustAddress(t *testing.T, street string, number int, zip, city string) customer.Address {
	t.Helper()

	address, err := customer.NewAddress(street, number, zip, city)
	require.NoError(t, err)

	return address
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *customer.Customer {
	t.Helper()

	c, err := customer.NewWithAddress(name, mustAddress(t, "Street 1", 1, "Zipcode 1", "City 1"))
	require.NoError(t, err)
	require.NoError(t, postgrestore.NewCustomerStore(db).Create(context.Background(), c))

	return c
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *product.Product {
	t.Helper()

	p, err := product.New(product.KindA, name, price)
	require.NoError(t, err)
	require.NoError(t, postgrestore.NewProductStore(db).Create(context.Background(), p))

	return p
}

func seedOrder(t *testing.T, db *gorm.DB, id string, c *customer.Customer, p *product.Product, quantity int) *checkout.Order {
	t.Helper()

	o, err := checkout.NewOrder(id, c.ID(), []checkout.OrderItem{
		checkout.NewOrderItem("1", p.Name(), p.Price(), p.ID(), quantity),
	})
	require.NoError(t, err)
	require.NoError(t, postgrestore.NewOrderStore(db).Create(context.Background(), o))

	return o
}
