package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboardCPT/internal/apperrors"
)

func validationError(t *testing.T, err error) *apperrors.ValidationError {
	t.Helper()

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	return vErr
}

func TestValidate_CreateUser(t *testing.T) {
	t.Run("Успешная валидация всех полей", func(t *testing.T) {
		fields, err := Validate(UserCreate, map[string]any{
			"name":     "Kevin",
			"password": "secret12345",
		})

		require.NoError(t, err)
		assert.Equal(t, "Kevin", fields.String("name"))
		assert.Equal(t, "secret12345", fields.String("password"))
	})

	t.Run("Отсутствует обязательное поле", func(t *testing.T) {
		_, err := Validate(UserCreate, map[string]any{
			"name": "Kevin",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "password", vErr.Field)
		assert.Equal(t, ReasonMissing, vErr.Reason)
	})

	t.Run("Лишнее поле отклоняется", func(t *testing.T) {
		_, err := Validate(UserCreate, map[string]any{
			"name":     "Kevin",
			"password": "secret12345",
			"role":     "admin",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "role", vErr.Field)
		assert.Equal(t, ReasonExtraForbidden, vErr.Reason)
	})

	t.Run("Пустое имя не проходит", func(t *testing.T) {
		_, err := Validate(UserCreate, map[string]any{
			"name":     "",
			"password": "secret12345",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "name", vErr.Field)
		assert.Equal(t, "min", vErr.Reason)
	})

	t.Run("Неверный тип поля", func(t *testing.T) {
		_, err := Validate(UserCreate, map[string]any{
			"name":     json.Number("5"),
			"password": "secret12345",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "name", vErr.Field)
		assert.Equal(t, ReasonStringType, vErr.Reason)
	})

	t.Run("null считается попыткой записи и не проходит по типу", func(t *testing.T) {
		_, err := Validate(UserCreate, map[string]any{
			"name":     nil,
			"password": "secret12345",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "name", vErr.Field)
		assert.Equal(t, ReasonStringType, vErr.Reason)
	})
}

func TestValidate_UpdateUser(t *testing.T) {
	t.Run("Возвращаются только присланные поля", func(t *testing.T) {
		fields, err := Validate(UserUpdate, map[string]any{
			"name": "Kevin_Junior",
		})

		require.NoError(t, err)
		assert.True(t, fields.Has("name"))
		assert.False(t, fields.Has("password"))
		assert.Len(t, fields, 1)
	})

	t.Run("Пустое тело допустимо", func(t *testing.T) {
		fields, err := Validate(UserUpdate, map[string]any{})

		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("Явно присланное пустое значение валидируется как обычно", func(t *testing.T) {
		_, err := Validate(UserUpdate, map[string]any{
			"name": "",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "name", vErr.Field)
		assert.Equal(t, "min", vErr.Reason)
	})

	t.Run("Лишнее поле отклоняется и в update", func(t *testing.T) {
		_, err := Validate(UserUpdate, map[string]any{
			"registration_time": "2024-01-01",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "registration_time", vErr.Field)
		assert.Equal(t, ReasonExtraForbidden, vErr.Reason)
	})
}

func TestValidate_Advertisement(t *testing.T) {
	t.Run("Успешное создание объявления", func(t *testing.T) {
		fields, err := Validate(AdvertisementCreate, map[string]any{
			"title":       "Продам машину",
			"description": "Не бита, не крашена!",
			"owner":       json.Number("2"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2), fields.Int64("owner"))
	})

	t.Run("owner должен быть целым числом", func(t *testing.T) {
		_, err := Validate(AdvertisementCreate, map[string]any{
			"title":       "Продам машину",
			"description": "Не бита, не крашена!",
			"owner":       "2",
		})

		vErr := validationError(t, err)
		assert.Equal(t, "owner", vErr.Field)
		assert.Equal(t, ReasonIntegerType, vErr.Reason)
	})

	t.Run("Дробный owner отклоняется", func(t *testing.T) {
		_, err := Validate(AdvertisementCreate, map[string]any{
			"title":       "Продам машину",
			"description": "Не бита, не крашена!",
			"owner":       json.Number("1.5"),
		})

		vErr := validationError(t, err)
		assert.Equal(t, "owner", vErr.Field)
		assert.Equal(t, ReasonIntegerType, vErr.Reason)
	})

	t.Run("owner нельзя менять через update", func(t *testing.T) {
		_, err := Validate(AdvertisementUpdate, map[string]any{
			"owner": json.Number("3"),
		})

		vErr := validationError(t, err)
		assert.Equal(t, "owner", vErr.Field)
		assert.Equal(t, ReasonExtraForbidden, vErr.Reason)
	})
}
