package handlers

import (
	"adboardCPT/internal/config"
	"adboardCPT/internal/database"
	"adboardCPT/internal/models"
	"adboardCPT/internal/service"
)

type Handlers struct {
	UserService  *service.EntityService[models.User]
	AdvService   *service.EntityService[models.Advertisement]
	StatsService service.StatsService
	DB           *database.DB
	Cfg          *config.Config
}

func NewHandlers(db *database.DB, services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:  services.User,
		AdvService:   services.Advertisement,
		StatsService: services.Stats,
		DB:           db,
		Cfg:          config,
	}
}
