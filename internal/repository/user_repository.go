package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"adboardCPT/internal/apperrors"
	"adboardCPT/internal/database"
	"adboardCPT/internal/models"
)

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) GetByID(ctx context.Context, scope *database.Scope, id int64) (*models.User, error) {
	query := `SELECT id, name, password_hash, registration_time FROM users WHERE id = $1`

	var user models.User
	err := scope.Tx().GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("User", id)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Insert(ctx context.Context, scope *database.Scope, user *models.User) (int64, error) {
	// id и registration_time назначает база
	query := `INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id`

	err := scope.Tx().QueryRowContext(ctx, query, user.Name, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании пользователя: %w", database.ClassifyError(err))
	}

	return user.ID, nil
}

func (r *userRepository) Update(ctx context.Context, scope *database.Scope, user *models.User) error {
	query := `UPDATE users SET name = $1, password_hash = $2 WHERE id = $3`

	result, err := scope.Tx().ExecContext(ctx, query, user.Name, user.PasswordHash, user.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пользователя: %w", database.ClassifyError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("User", user.ID)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, scope *database.Scope, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := scope.Tx().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", database.ClassifyError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("User", id)
	}

	return nil
}
