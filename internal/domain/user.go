package domain

import "time"

type User struct {
	ID           string    `json:"id" db:"id"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
