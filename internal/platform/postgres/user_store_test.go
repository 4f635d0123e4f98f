package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/platform/postgres"
	"github.com/pickle-rental/pickle-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoresPanicOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { postgres.NewPostgresUserStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresStoreStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresDressStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresOptionStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresReservationStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresLikeStore(nil, nil) })
	assert.Panics(t, func() { postgres.NewPostgresRecentViewStore(nil, nil) })
}

func TestPostgresUserStore_GetByID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("FROM users").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nickname", "email", "created_at"}).
				AddRow(userID.String(), "pickle", "pickle@example.com", createdAt))

		user, err := postgres.NewPostgresUserStore(db, nil).GetByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "pickle", user.Nickname)
		assert.Equal(t, createdAt, user.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("FROM users").WithArgs(userID).WillReturnError(sql.ErrNoRows)

		_, err := postgres.NewPostgresUserStore(db, nil).GetByID(context.Background(), userID)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newMock(t)
		boom := errors.New("connection refused")
		mock.ExpectQuery("FROM users").WithArgs(userID).WillReturnError(boom)

		_, err := postgres.NewPostgresUserStore(db, nil).GetByID(context.Background(), userID)

		assert.ErrorIs(t, err, boom)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestPostgresUserStore_WithTx(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	userID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery("FROM users").WithArgs(userID).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	txStore := postgres.NewPostgresUserStore(db, nil).WithTx(tx)
	_, err = txStore.GetByID(context.Background(), userID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	require.NoError(t, tx.Rollback())
}
