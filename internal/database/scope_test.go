package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	t.Run("Нарушение уникальности", func(t *testing.T) {
		err := ClassifyError(&pq.Error{Code: "23505", Constraint: "users_name_key"})
		assert.True(t, errors.Is(err, ErrUniqueViolation))
	})

	t.Run("Нарушение внешнего ключа", func(t *testing.T) {
		err := ClassifyError(&pq.Error{Code: "23503", Constraint: "advertisements_owner_fkey"})
		assert.True(t, errors.Is(err, ErrForeignKeyViolation))
	})

	t.Run("Обёрнутая ошибка драйвера тоже распознаётся", func(t *testing.T) {
		wrapped := fmt.Errorf("ошибка при создании пользователя: %w", &pq.Error{Code: "23505"})
		assert.True(t, errors.Is(ClassifyError(wrapped), ErrUniqueViolation))
	})

	t.Run("Прочие ошибки возвращаются как есть", func(t *testing.T) {
		plain := errors.New("connection reset")
		assert.Equal(t, plain, ClassifyError(plain))
	})

	t.Run("nil остаётся nil", func(t *testing.T) {
		assert.NoError(t, ClassifyError(nil))
	})
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	return &DB{DB: sqlx.NewDb(db, "sqlmock")}, mock, func() { db.Close() }
}

func TestScope(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit фиксирует транзакцию один раз", func(t *testing.T) {
		testDB, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		scope, err := testDB.BeginScope(ctx)
		require.NoError(t, err)

		require.NoError(t, scope.Commit())

		// повторная фиксация не проходит
		assert.Error(t, scope.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Release откатывает незафиксированное", func(t *testing.T) {
		testDB, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM users WHERE id = $1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		scope, err := testDB.BeginScope(ctx)
		require.NoError(t, err)

		_, err = scope.Tx().ExecContext(ctx, `DELETE FROM users WHERE id = $1`, int64(1))
		require.NoError(t, err)

		scope.Release()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Release после Commit ничего не делает", func(t *testing.T) {
		testDB, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit()

		scope, err := testDB.BeginScope(ctx)
		require.NoError(t, err)
		require.NoError(t, scope.Commit())

		scope.Release()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка ограничения при фиксации классифицируется", func(t *testing.T) {
		testDB, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pq.Error{Code: "23505", Constraint: "users_name_key"})

		scope, err := testDB.BeginScope(ctx)
		require.NoError(t, err)

		err = scope.Commit()
		assert.True(t, errors.Is(err, ErrUniqueViolation))
	})

	t.Run("Scope достаётся из контекста", func(t *testing.T) {
		testDB, mock, cleanup := newMockDB(t)
		defer cleanup()

		mock.ExpectBegin()

		scope, err := testDB.BeginScope(ctx)
		require.NoError(t, err)
		defer scope.Release()

		fromCtx, err := ScopeFromContext(WithScope(ctx, scope))
		require.NoError(t, err)
		assert.Same(t, scope, fromCtx)

		_, err = ScopeFromContext(ctx)
		assert.Error(t, err)
	})
}
