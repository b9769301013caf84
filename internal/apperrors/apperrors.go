package apperrors

import "fmt"

// ValidationError - ошибка схемы входных данных. Возвращается валидатором
// на первом же неподходящем поле, до обращения к БД.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("поле %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError - запись с таким id отсутствует.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func NewNotFound(kind string, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// ConflictError - нарушение уникальности или ссылочной целостности,
// обнаруженное базой при выполнении мутации.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}
