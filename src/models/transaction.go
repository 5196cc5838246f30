package models

import "github.com/google/uuid"

type Transaction struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        Date      `json:"date"`
	Description *string   `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
	CategoryID  uuid.UUID `json:"category_id"`
}
