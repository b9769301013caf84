package service

import (
	"context"
	"errors"

	"adboardCPT/internal/apperrors"
	"adboardCPT/internal/database"
	"adboardCPT/internal/validation"
)

// EntityRepository - операции хранилища, которые нужны контроллеру сущности.
type EntityRepository[T any] interface {
	GetByID(ctx context.Context, scope *database.Scope, id int64) (*T, error)
	Insert(ctx context.Context, scope *database.Scope, entity *T) (int64, error)
	Update(ctx context.Context, scope *database.Scope, entity *T) error
	Delete(ctx context.Context, scope *database.Scope, id int64) error
}

// EntityService - общий CRUD-контроллер, один экземпляр на ресурс.
// Всю работу с БД ведёт через Scope из контекста запроса; фиксация
// транзакции происходит здесь, откат незафиксированного - в pipeline.
type EntityService[T any] struct {
	repo         EntityRepository[T]
	createSchema validation.Schema
	updateSchema validation.Schema

	// build собирает новую сущность из провалидированных полей,
	// apply переносит в загруженную сущность только присланные поля.
	build func(fields validation.FieldSet) (*T, error)
	apply func(entity *T, fields validation.FieldSet) error

	// Сообщения для конфликтов, обнаруженных базой.
	uniqueMessage    func(entity *T) string
	referenceMessage string
}

func (s *EntityService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	scope, err := database.ScopeFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, scope, id)
}

func (s *EntityService[T]) Create(ctx context.Context, payload map[string]any) (*T, error) {
	fields, err := validation.Validate(s.createSchema, payload)
	if err != nil {
		return nil, err
	}

	entity, err := s.build(fields)
	if err != nil {
		return nil, err
	}

	scope, err := database.ScopeFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, scope, entity)
	if err != nil {
		return nil, s.conflict(entity, err)
	}

	// Перечитываем до фиксации, чтобы забрать назначенные базой поля.
	created, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if err := scope.Commit(); err != nil {
		return nil, s.conflict(entity, err)
	}

	return created, nil
}

func (s *EntityService[T]) Update(ctx context.Context, id int64, payload map[string]any) (*T, error) {
	scope, err := database.ScopeFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entity, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	fields, err := validation.Validate(s.updateSchema, payload)
	if err != nil {
		return nil, err
	}

	// Меняются только явно присланные поля, остальные остаются как были.
	if len(fields) > 0 {
		if err := s.apply(entity, fields); err != nil {
			return nil, err
		}

		if err := s.repo.Update(ctx, scope, entity); err != nil {
			return nil, s.conflict(entity, err)
		}
	}

	updated, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if err := scope.Commit(); err != nil {
		return nil, s.conflict(entity, err)
	}

	return updated, nil
}

func (s *EntityService[T]) Delete(ctx context.Context, id int64) error {
	scope, err := database.ScopeFromContext(ctx)
	if err != nil {
		return err
	}

	// Повторное удаление того же id отвечает NotFound, а не молчаливым успехом.
	entity, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return s.conflict(entity, err)
	}

	if err := scope.Commit(); err != nil {
		return s.conflict(entity, err)
	}

	return nil
}

// conflict переводит ошибки ограничений базы в ConflictError с сообщением
// ресурса. Остальные ошибки возвращаются без изменений.
func (s *EntityService[T]) conflict(entity *T, err error) error {
	switch {
	case errors.Is(err, database.ErrUniqueViolation):
		if s.uniqueMessage != nil {
			return apperrors.NewConflict(s.uniqueMessage(entity))
		}
	case errors.Is(err, database.ErrForeignKeyViolation):
		if s.referenceMessage != "" {
			return apperrors.NewConflict(s.referenceMessage)
		}
	}

	return err
}
