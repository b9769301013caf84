package service

import (
	"context"

	"adboardCPT/internal/models"
	"adboardCPT/internal/repository"
)

type StatsService interface {
	GetRowCounts(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetRowCounts(ctx context.Context) (*models.Stats, error) {
	stats, err := s.statsRepo.CountRows(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
