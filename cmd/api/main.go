package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"adboardCPT/cmd/app"
	"adboardCPT/internal/config"
	handlers "adboardCPT/internal/handler"
	"adboardCPT/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(db, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", handler.StatsHandler).Methods(http.MethodGet)

	// id в пути - только цифры, иначе маршрут не совпадает
	router.HandleFunc("/user", handler.Pipeline(handler.CreateUser)).Methods(http.MethodPost)
	router.HandleFunc("/user/{user_id:[0-9]+}", handler.Pipeline(handler.GetUser)).Methods(http.MethodGet)
	router.HandleFunc("/user/{user_id:[0-9]+}", handler.Pipeline(handler.UpdateUser)).Methods(http.MethodPatch)
	router.HandleFunc("/user/{user_id:[0-9]+}", handler.Pipeline(handler.DeleteUser)).Methods(http.MethodDelete)

	router.HandleFunc("/advertisement", handler.Pipeline(handler.CreateAdvertisement)).Methods(http.MethodPost)
	router.HandleFunc("/advertisement/{adv_id:[0-9]+}", handler.Pipeline(handler.GetAdvertisement)).Methods(http.MethodGet)
	router.HandleFunc("/advertisement/{adv_id:[0-9]+}", handler.Pipeline(handler.UpdateAdvertisement)).Methods(http.MethodPatch)
	router.HandleFunc("/advertisement/{adv_id:[0-9]+}", handler.Pipeline(handler.DeleteAdvertisement)).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
