package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// Scope - единица работы одного запроса. Все обращения к БД внутри запроса
// идут через один Scope; между запросами он не переиспользуется.
type Scope struct {
	tx       *sqlx.Tx
	released bool
}

func (db *DB) BeginScope(ctx context.Context) (*Scope, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}

	return &Scope{tx: tx}, nil
}

// Tx отдаёт транзакцию для запросов репозиториев.
func (s *Scope) Tx() *sqlx.Tx {
	return s.tx
}

// Commit фиксирует транзакцию. Ошибки ограничений возвращаются
// как ErrUniqueViolation / ErrForeignKeyViolation.
func (s *Scope) Commit() error {
	if s.released {
		return fmt.Errorf("scope уже завершён")
	}

	err := s.tx.Commit()
	if err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", ClassifyError(err))
	}

	s.released = true
	return nil
}

// Release откатывает всё незафиксированное. Вызывается по defer в конце
// обработки запроса; после Commit ничего не делает.
func (s *Scope) Release() {
	if s.released {
		return
	}
	s.released = true

	err := s.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Printf("ошибка при откате транзакции: %v", err)
	}
}

type scopeKey struct{}

func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

func ScopeFromContext(ctx context.Context) (*Scope, error) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)
	if !ok || scope == nil {
		return nil, fmt.Errorf("в контексте запроса нет scope")
	}

	return scope, nil
}
