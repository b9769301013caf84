package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"adboardCPT/internal/config"
	"adboardCPT/internal/database"
	handlers "adboardCPT/internal/handler"
	"adboardCPT/internal/repository"
	"adboardCPT/internal/service"
)

const (
	selectUser = `SELECT id, name, password_hash, registration_time FROM users WHERE id = $1`
	insertUser = `INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id`
	updateUser = `UPDATE users SET name = $1, password_hash = $2 WHERE id = $3`
	deleteUser = `DELETE FROM users WHERE id = $1`

	selectAdv = `SELECT id, title, description, creation_time, owner FROM advertisements WHERE id = $1`
	insertAdv = `INSERT INTO advertisements (title, description, owner) VALUES ($1, $2, $3) RETURNING id`
)

// newTestRouter поднимает полный стек обработки поверх sqlmock:
// маршруты, pipeline, сервисы и репозитории настоящие.
func newTestRouter(t *testing.T) (*mux.Router, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	testDB := &database.DB{DB: sqlx.NewDb(db, "sqlmock")}
	repo := repository.NewRepository(testDB)
	services := service.NewService(repo)
	handler := handlers.NewHandlers(testDB, services, &config.Config{})

	router := mux.NewRouter()
	router.HandleFunc("/user", handler.Pipeline(handler.CreateUser)).Methods(http.MethodPost)
	router.HandleFunc("/user/{user_id:[0-9]+}", handler.Pipeline(handler.GetUser)).Methods(http.MethodGet)
	router.HandleFunc("/user/{user_id:[0-9]+}", handler.Pipeline(handler.UpdateUser)).Methods(http.MethodPatch)
	router.HandleFunc("/user/{user_id:[0-9]+}", handler.Pipeline(handler.DeleteUser)).Methods(http.MethodDelete)
	router.HandleFunc("/advertisement", handler.Pipeline(handler.CreateAdvertisement)).Methods(http.MethodPost)
	router.HandleFunc("/advertisement/{adv_id:[0-9]+}", handler.Pipeline(handler.GetAdvertisement)).Methods(http.MethodGet)
	router.HandleFunc("/advertisement/{adv_id:[0-9]+}", handler.Pipeline(handler.UpdateAdvertisement)).Methods(http.MethodPatch)
	router.HandleFunc("/advertisement/{adv_id:[0-9]+}", handler.Pipeline(handler.DeleteAdvertisement)).Methods(http.MethodDelete)

	return router, mock, func() { db.Close() }
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
