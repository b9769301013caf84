package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"adboardCPT/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse - ответ на ошибку валидации: статус плюс поле и причина
type ValidationResponse struct {
	Status      string                     `json:"status"`
	Description *apperrors.ValidationError `json:"description"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// TranslateError переводит доменные ошибки в ответ и статус.
// Вызывается один раз, на внешней границе pipeline.
func TranslateError(w http.ResponseWriter, err error) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var conflictErr *apperrors.ConflictError

	switch {
	case errors.As(err, &validationErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidationResponse{Status: "error", Description: validationErr})
	case errors.As(err, &notFoundErr):
		WriteError(w, notFoundErr.Error(), http.StatusNotFound)
	case errors.As(err, &conflictErr):
		WriteError(w, conflictErr.Message, http.StatusConflict)
	default:
		// наружу деталей не отдаём
		log.Printf("необработанная ошибка запроса: %v", err)
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
