package models

import "github.com/google/uuid"

type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Emoji  *string   `json:"emoji"`
	UserID uuid.UUID `json:"user_id"`
}
