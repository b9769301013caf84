package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password хеширует пароль через bcrypt. Соль случайная, поэтому два вызова
// для одного пароля дают разные хеши.
func Password(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	return string(hashed), nil
}

// Verify проверяет пароль против сохранённого хеша.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
