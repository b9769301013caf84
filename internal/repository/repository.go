package repository

import (
	"context"

	"adboardCPT/internal/database"
	"adboardCPT/internal/models"
)

// Репозитории не держат соединение: каждая операция выполняется
// в Scope запроса, который передаётся явно.

type UserRepository interface {
	GetByID(ctx context.Context, scope *database.Scope, id int64) (*models.User, error)
	Insert(ctx context.Context, scope *database.Scope, user *models.User) (int64, error)
	Update(ctx context.Context, scope *database.Scope, user *models.User) error
	Delete(ctx context.Context, scope *database.Scope, id int64) error
}

type AdvertisementRepository interface {
	GetByID(ctx context.Context, scope *database.Scope, id int64) (*models.Advertisement, error)
	Insert(ctx context.Context, scope *database.Scope, adv *models.Advertisement) (int64, error)
	Update(ctx context.Context, scope *database.Scope, adv *models.Advertisement) error
	Delete(ctx context.Context, scope *database.Scope, id int64) error
}

type StatsRepository interface {
	CountRows(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User          UserRepository
	Advertisement AdvertisementRepository
	Stats         StatsRepository
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{
		User:          NewUserRepository(),
		Advertisement: NewAdvertisementRepository(),
		Stats:         NewStatsRepository(db),
	}
}
