package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("Alice@Example.com"))
	assert.Equal(t, "alice@example.com", NormalizeEmail("  alice@example.com "))
	assert.Equal(t, "alice@example.com", NormalizeEmail("alice@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("longenough"))
	assert.False(t, ValidatePassword("short"))
	assert.False(t, ValidatePassword(""))
}

func TestValidateTransactionType(t *testing.T) {
	assert.True(t, ValidateTransactionType("income"))
	assert.True(t, ValidateTransactionType("expense"))
	assert.False(t, ValidateTransactionType("transfer"))
	assert.False(t, ValidateTransactionType("Income"))
	assert.False(t, ValidateTransactionType(""))
}
