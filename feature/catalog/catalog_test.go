package catalog

import (
	"context"
	"net/url"
	"testing"
	"time"

	"card-assets/core/database"
	"card-assets/core/storage"
	"card-assets/core/storage/mocks"
	"card-assets/feature/assets"
	"card-assets/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupSQLite creates an in-memory catalog with two categories and three cards.
func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	categories := []models.Category{
		{ID: 1, Slug: "birthday", Name: "Birthday", Position: 2},
		{ID: 2, Slug: "thanks", Name: "Thank You", Position: 1},
	}
	require.NoError(t, db.Create(&categories).Error)

	cards := []models.GiftCard{
		{ID: 1, CategoryID: 1, Title: "Cake", ImageURL: "https://cdn.example.com/assets/1700000000000.png", ValueCents: 2500, Currency: "USD"},
		{ID: 2, CategoryID: 1, Title: "Balloons", ImageURL: "", ValueCents: 1000, Currency: "USD"},
		{ID: 3, CategoryID: 2, Title: "Flowers", ImageURL: "uploads/flowers/bouquet", ValueCents: 5000, Currency: "EUR", Claimed: true},
	}
	require.NoError(t, db.Create(&cards).Error)
	return db
}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// newSigningService returns an assets service whose client signs every key.
func newSigningService(t *testing.T) (*assets.Service, *mocks.Client) {
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", mock.Anything, time.Hour, mock.Anything).
		Return(func(_ context.Context, _ string, key string, _ time.Duration, _ url.Values) *url.URL {
			return &url.URL{Scheme: "https", Host: "s3.example.com", Path: "/assets/" + key}
		}, nil)
	return assets.NewService(storage.NewHandle(client, "assets"), time.Hour, zap.NewNop(), nil), client
}
