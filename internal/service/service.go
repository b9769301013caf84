package service

import (
	"adboardCPT/internal/models"
	"adboardCPT/internal/repository"
)

type Service struct {
	User          *EntityService[models.User]
	Advertisement *EntityService[models.Advertisement]
	Stats         StatsService
}

func NewService(rep *repository.Repository) *Service {
	return &Service{
		User:          NewUserService(rep.User),
		Advertisement: NewAdvertisementService(rep.Advertisement),
		Stats:         NewStatsService(rep.Stats),
	}
}
