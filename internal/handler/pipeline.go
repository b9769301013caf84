package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"adboardCPT/internal/apperrors"
	"adboardCPT/internal/database"
	"adboardCPT/internal/validation"
)

// endpoint - обработчик, возвращающий доменную ошибку вместо записи ответа.
type endpoint func(w http.ResponseWriter, r *http.Request) error

// Pipeline собирает цепочку обработки запроса: снаружи перевод ошибок,
// под ним scope транзакции, в центре сам обработчик. Scope откатывает
// всё незафиксированное до того, как ошибка уйдёт клиенту.
func (h *Handlers) Pipeline(fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.withScope(fn)(w, r); err != nil {
			TranslateError(w, err)
		}
	}
}

func (h *Handlers) withScope(fn endpoint) endpoint {
	return func(w http.ResponseWriter, r *http.Request) error {
		scope, err := h.DB.BeginScope(r.Context())
		if err != nil {
			return err
		}
		defer scope.Release()

		return fn(w, r.WithContext(database.WithScope(r.Context(), scope)))
	}
}

// readPayload декодирует тело запроса в карту. Числа приходят как
// json.Number, чтобы валидатор сам разбирался с типами.
func readPayload(r *http.Request) (map[string]any, error) {
	payload := map[string]any{}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	err := decoder.Decode(&payload)
	if err != nil && err != io.EOF {
		return nil, apperrors.NewValidation("body", "json_invalid")
	}

	return payload, nil
}

// pathID достаёт числовой id из пути. Маршруты пускают сюда только цифры.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation(name, validation.ReasonIntegerType)
	}

	return id, nil
}
