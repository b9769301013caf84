package repository

import (
	"context"
	"fmt"

	"adboardCPT/internal/database"
	"adboardCPT/internal/models"
)

type statsRepository struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountRows(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	err := r.db.GetContext(ctx, &stats, `
			SELECT
				(SELECT COUNT(*) FROM users) AS users,
				(SELECT COUNT(*) FROM advertisements) AS advertisements
		`)

	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте строк базы данных: %w", err)
	}

	return &stats, nil
}
