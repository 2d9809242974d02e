package checks

import (
	"testing"

	"card-assets/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var expected = map[string][]string{
	"categories": {"id", "slug"},
	"gift_cards": {"id", "title", "image_url"},
}

func TestCheckSchema(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		report := CheckSchema(nil, expected)
		assert.Equal(t, DatabaseDisabled, report.Status)
	})

	t.Run("OK", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE categories (id INTEGER PRIMARY KEY, slug TEXT)").Error)
		require.NoError(t, db.Exec("CREATE TABLE gift_cards (id INTEGER PRIMARY KEY, title TEXT, image_url TEXT)").Error)

		report := CheckSchema(db, expected)
		assert.Equal(t, DatabaseOK, report.Status)
		assert.Empty(t, report.MissingColumns)
	})

	t.Run("Incomplete", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE gift_cards (id INTEGER PRIMARY KEY, title TEXT)").Error)

		report := CheckSchema(db, expected)
		assert.Equal(t, DatabaseIncomplete, report.Status)
		assert.Equal(t, []string{"id", "slug"}, report.MissingColumns["categories"])
		assert.Equal(t, []string{"image_url"}, report.MissingColumns["gift_cards"])
	})

	t.Run("QueryError", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
		require.NoError(t, err)

		mock.ExpectQuery("SHOW COLUMNS FROM `categories`").WillReturnError(assert.AnError)
		mock.ExpectQuery("SHOW COLUMNS FROM `gift_cards`").WillReturnError(assert.AnError)

		report := CheckSchema(db, expected)
		assert.Equal(t, DatabaseError, report.Status)
		assert.Len(t, report.Errors, 2)
	})
}
