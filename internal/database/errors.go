package database

import (
	"errors"

	"github.com/lib/pq"
)

// Ошибки ограничений, которые контроллеры переводят в Conflict.
var (
	ErrUniqueViolation     = errors.New("нарушено ограничение уникальности")
	ErrForeignKeyViolation = errors.New("нарушено ограничение внешнего ключа")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyError превращает ошибки драйвера по кодам PostgreSQL в сторожевые
// ошибки пакета. Все остальные ошибки возвращаются как есть.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return ErrUniqueViolation
		case pgForeignKeyViolation:
			return ErrForeignKeyViolation
		}
	}

	return err
}
