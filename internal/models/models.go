package models

import (
	"time"
)

// User - пользователь доски объявлений. Хеш пароля наружу не отдаём.
type User struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	RegistrationTime time.Time `json:"registration_time" db:"registration_time"`
}

type Advertisement struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	CreationTime time.Time `json:"creation_time" db:"creation_time"`
	Owner        int64     `json:"owner" db:"owner"`
}

type Stats struct {
	Users          int `json:"users" db:"users"`
	Advertisements int `json:"advertisements" db:"advertisements"`
}
