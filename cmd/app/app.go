package app

import (
	"log"

	"adboardCPT/internal/config"
	"adboardCPT/internal/database"
	"adboardCPT/internal/repository"
	"adboardCPT/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db)

	services := service.NewService(repo)

	return db, repo, services
}
