package models

// UpdateTransactionRequest is a partial update: only non-nil fields are
// written. Date and CategoryID arrive as strings and are parsed at the
// handler boundary.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"category_id"`
}

// Empty reports whether no field was provided at all.
func (r *UpdateTransactionRequest) Empty() bool {
	return r.Amount == nil && r.Type == nil && r.Date == nil &&
		r.Description == nil && r.CategoryID == nil
}
