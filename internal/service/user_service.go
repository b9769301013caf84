package service

import (
	"fmt"

	"adboardCPT/internal/hash"
	"adboardCPT/internal/models"
	"adboardCPT/internal/repository"
	"adboardCPT/internal/validation"
)

// NewUserService собирает CRUD-контроллер пользователей.
// Пароль хешируется и при создании, и при обновлении; открытый текст
// дальше валидатора не уходит.
func NewUserService(userRepo repository.UserRepository) *EntityService[models.User] {
	return &EntityService[models.User]{
		repo:         userRepo,
		createSchema: validation.UserCreate,
		updateSchema: validation.UserUpdate,
		build: func(fields validation.FieldSet) (*models.User, error) {
			hashedPassword, err := hash.Password(fields.String("password"))
			if err != nil {
				return nil, err
			}

			return &models.User{
				Name:         fields.String("name"),
				PasswordHash: hashedPassword,
			}, nil
		},
		apply: func(user *models.User, fields validation.FieldSet) error {
			if fields.Has("name") {
				user.Name = fields.String("name")
			}

			if fields.Has("password") {
				hashedPassword, err := hash.Password(fields.String("password"))
				if err != nil {
					return err
				}
				user.PasswordHash = hashedPassword
			}

			return nil
		},
		uniqueMessage: func(user *models.User) string {
			return fmt.Sprintf("User with name %s already exists", user.Name)
		},
		// Объявления ссылаются на пользователя, каскадного удаления нет.
		referenceMessage: "User owns existing advertisements",
	}
}
