package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	IsActive      bool      `json:"is_active"`
	EmailVerified bool      `json:"-"`
	PasswordHash  []byte    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
