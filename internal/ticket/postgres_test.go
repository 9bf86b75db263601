package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-service/internal/db"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewPostgresStore(&db.DB{DB: sqlDB}), mock
}

func TestListAll(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, title, price, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "created_at"}).
			AddRow("7b5de594-1a1a-4b57-9f2f-2ec1a0b1f101", "Standard Admission", 12.50, now).
			AddRow("b3a9c1de-52c4-4d26-9a6d-0d3f2e4a9c02", "VIP Admission", 45.00, now))

	tickets, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Standard Admission", tickets[0].Title)
	assert.Equal(t, 12.50, tickets[0].Price)
	assert.Equal(t, "VIP Admission", tickets[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_Found(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	now := time.Now()
	id := "7b5de594-1a1a-4b57-9f2f-2ec1a0b1f101"

	mock.ExpectQuery(`SELECT id, title, price, created_at`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "created_at"}).
			AddRow(id, "Standard Admission", 12.50, now))

	tk, err := store.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Standard Admission", tk.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	t.Parallel()

	store, mock := newMockStore(t)
	id := "99999999-9999-9999-9999-999999999999"

	mock.ExpectQuery(`SELECT id, title, price, created_at`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "created_at"}))

	_, err := store.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_InvalidID(t *testing.T) {
	t.Parallel()

	// A malformed id never reaches the database.
	store, mock := newMockStore(t)

	_, err := store.FindByID(context.Background(), "not-a-real-id")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
