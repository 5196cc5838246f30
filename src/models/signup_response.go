package models

import "github.com/google/uuid"

type SignupResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
}
