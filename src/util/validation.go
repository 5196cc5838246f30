package util

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// NormalizeEmail canonicalizes an address so signup, login and lookup all
// agree on the stored form regardless of how the caller cased it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ValidateTransactionType enforces the two-value enum; the check constraint
// on the transactions table enforces the same set.
func ValidateTransactionType(t string) bool {
	return t == "income" || t == "expense"
}
