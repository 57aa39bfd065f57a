package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "storeapi/errors"
	"storeapi/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	db       *gorm.DB
	ctx      context.Context
	customer map[string]models.Customer
	product  map[string]models.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		db:       setupRepoTestDB(t),
		ctx:      context.Background(),
		customer: map[string]models.Customer{},
		product:  map[string]models.Product{},
	}
}

func (f *fixture) addCustomer(t *testing.T, name, email, phone string) models.Customer {
	t.Helper()
	c := models.Customer{Name: name, Email: email, Phone: phone}
	require.NoError(t, f.db.Create(&c).Error)
	f.customer[name] = c
	return c
}

func (f *fixture) addProduct(t *testing.T, title, description, slug, price string) models.Product {
	t.Helper()
	p := models.Product{Title: title, Description: description, Slug: slug, Price: decimal.RequireFromString(price)}
	require.NoError(t, f.db.Create(&p).Error)
	f.product[title] = p
	return p
}

type lineSeed struct {
	product  string
	quantity int
}

func (f *fixture) addOrder(t *testing.T, customer string, createdAt time.Time, lines ...lineSeed) models.Order {
	t.Helper()
	o := models.Order{
		ID:         uuid.New(),
		CustomerID: f.customer[customer].ID,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	for _, l := range lines {
		o.Lines = append(o.Lines, models.OrderLine{ProductID: f.product[l.product].ID, Quantity: l.quantity})
	}
	require.NoError(t, NewOrderRepository(f.db).Create(f.ctx, &o))
	return o
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, apperrors.ErrOrderNotFound, translate(gorm.ErrRecordNotFound, apperrors.ErrOrderNotFound))

	err := translate(gorm.ErrForeignKeyViolated, apperrors.ErrOrderNotFound)
	assert.ErrorIs(t, err, apperrors.ErrInUse)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.GetAppError(err).Code)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other, apperrors.ErrOrderNotFound))
	assert.NoError(t, translate(nil, apperrors.ErrOrderNotFound))
}
