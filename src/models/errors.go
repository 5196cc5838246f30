package models

import "errors"

var (
	// ErrNotFound means no row matched the (id, user_id) pair. Ownership
	// failures surface as this same error so handlers cannot leak whether
	// a foreign row exists.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail means an account with the email already exists.
	ErrDuplicateEmail = errors.New("email already exists")
)
