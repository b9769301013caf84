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

type advertisementRepository struct{}

func NewAdvertisementRepository() AdvertisementRepository {
	return &advertisementRepository{}
}

func (r *advertisementRepository) GetByID(ctx context.Context, scope *database.Scope, id int64) (*models.Advertisement, error) {
	query := `SELECT id, title, description, creation_time, owner FROM advertisements WHERE id = $1`

	var adv models.Advertisement
	err := scope.Tx().GetContext(ctx, &adv, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("Advertisement", id)
		}
		return nil, fmt.Errorf("ошибка при получении объявления: %w", err)
	}

	return &adv, nil
}

func (r *advertisementRepository) Insert(ctx context.Context, scope *database.Scope, adv *models.Advertisement) (int64, error) {
	query := `INSERT INTO advertisements (title, description, owner) VALUES ($1, $2, $3) RETURNING id`

	err := scope.Tx().QueryRowContext(ctx, query, adv.Title, adv.Description, adv.Owner).Scan(&adv.ID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании объявления: %w", database.ClassifyError(err))
	}

	return adv.ID, nil
}

func (r *advertisementRepository) Update(ctx context.Context, scope *database.Scope, adv *models.Advertisement) error {
	query := `UPDATE advertisements SET title = $1, description = $2 WHERE id = $3`

	result, err := scope.Tx().ExecContext(ctx, query, adv.Title, adv.Description, adv.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении объявления: %w", database.ClassifyError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Advertisement", adv.ID)
	}

	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, scope *database.Scope, id int64) error {
	query := `DELETE FROM advertisements WHERE id = $1`

	result, err := scope.Tx().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении объявления: %w", database.ClassifyError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFound("Advertisement", id)
	}

	return nil
}
