package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCartStore creates a GormCartStore with a mocked SQL connection
func newMockCartStore(t *testing.T) (*GormCartStore, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCartStore(gormDB, zap.NewNop()), mock, mockDB
}

func mustMarshalItems(t *testing.T, items []cart.Item) string {
	t.Helper()
	data, err := json.Marshal(items)
	require.NoError(t, err)
	return string(data)
}

func TestGormCartStore_Load(t *testing.T) {
	t.Run("loads stored items", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		items := []cart.Item{
			{ID: "walkman-01", Name: "Cassette Walkman", Price: "$34.99"},
			{ID: "vhs-05", Name: "Blank VHS 3-Pack", Price: "$9.50"},
		}

		rows := sqlmock.NewRows([]string{"session_id", "items", "updated_at"}).
			AddRow("sess-1", mustMarshalItems(t, items), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "session_carts" WHERE session_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("sess-1", 1).
			WillReturnRows(rows)

		loaded, err := store.Load(context.Background(), "sess-1")

		assert.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "walkman-01", loaded[0].ID)
		assert.Equal(t, "$9.50", loaded[1].Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty sequence when no row exists", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "session_carts" WHERE session_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("sess-2", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		loaded, err := store.Load(context.Background(), "sess-2")

		assert.NoError(t, err)
		assert.Empty(t, loaded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("resets malformed record to empty", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"session_id", "items", "updated_at"}).
			AddRow("sess-3", "{not json", time.Now())

		mock.ExpectQuery(`SELECT \* FROM "session_carts" WHERE session_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("sess-3", 1).
			WillReturnRows(rows)
		mock.ExpectExec(`DELETE FROM "session_carts" WHERE session_id = \$1`).
			WithArgs("sess-3").
			WillReturnResult(sqlmock.NewResult(0, 1))

		loaded, err := store.Load(context.Background(), "sess-3")

		assert.NoError(t, err)
		assert.Empty(t, loaded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartStore_Save(t *testing.T) {
	t.Run("upserts the item sequence", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		items := []cart.Item{
			{ID: "walkman-01", Name: "Cassette Walkman", Price: "$34.99"},
		}

		mock.ExpectExec(`INSERT INTO "session_carts" .* ON CONFLICT \("session_id"\) DO UPDATE SET .*`).
			WithArgs("sess-1", mustMarshalItems(t, items), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Save(context.Background(), "sess-1", items)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores nil as the empty sequence", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "session_carts" .* ON CONFLICT \("session_id"\) DO UPDATE SET .*`).
			WithArgs("sess-1", "[]", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Save(context.Background(), "sess-1", nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartStore_Clear(t *testing.T) {
	t.Run("deletes the cart row", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "session_carts" WHERE session_id = \$1`).
			WithArgs("sess-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Clear(context.Background(), "sess-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clearing an absent cart is not an error", func(t *testing.T) {
		store, mock, mockDB := newMockCartStore(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "session_carts" WHERE session_id = \$1`).
			WithArgs("sess-9").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.Clear(context.Background(), "sess-9")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
