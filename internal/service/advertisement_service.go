package service

import (
	"adboardCPT/internal/models"
	"adboardCPT/internal/repository"
	"adboardCPT/internal/validation"
)

// NewAdvertisementService собирает CRUD-контроллер объявлений.
func NewAdvertisementService(advRepo repository.AdvertisementRepository) *EntityService[models.Advertisement] {
	return &EntityService[models.Advertisement]{
		repo:         advRepo,
		createSchema: validation.AdvertisementCreate,
		updateSchema: validation.AdvertisementUpdate,
		build: func(fields validation.FieldSet) (*models.Advertisement, error) {
			return &models.Advertisement{
				Title:       fields.String("title"),
				Description: fields.String("description"),
				Owner:       fields.Int64("owner"),
			}, nil
		},
		apply: func(adv *models.Advertisement, fields validation.FieldSet) error {
			if fields.Has("title") {
				adv.Title = fields.String("title")
			}

			if fields.Has("description") {
				adv.Description = fields.String("description")
			}

			return nil
		},
		// owner обязан ссылаться на существующего пользователя
		referenceMessage: "no such user exists",
	}
}
