// internal/repository/product_repository_test.go
package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestProductFind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "description", "price", "stock_quantity", "image_name", "category"}).
		AddRow(id, now, now, "iPhone 15 Pro", "Le dernier iPhone", 1199.99, 25, "iphone15pro.jpg", "smartphones")

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(rows)

	product, err := repo.Find(id)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "iPhone 15 Pro", product.Name)
	assert.Equal(t, 1199.99, product.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductFindAbsentIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.Find(id)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductCountInStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE stock_quantity > 0`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountInStock()
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestProductAveragePriceEmptyCatalog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	// COALESCE keeps the average at 0 when there are no products.
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(price\), 0\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	avg, err := repo.AveragePrice()
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}
