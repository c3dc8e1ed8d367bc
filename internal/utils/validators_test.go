package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co.uk",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"User Name <user@example.com>",
		"user@example.com extra",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsComplexPassword(t *testing.T) {
	valid := []string{
		"Abcdef1!",
		"Str0ng&Password",
		"xY9#long-enough",
	}
	for _, pw := range valid {
		assert.True(t, IsComplexPassword(pw), pw)
	}

	invalid := []string{
		"",
		"Ab1!",           // too short
		"abcdefg1!",      // no upper
		"ABCDEFG1!",      // no lower
		"Abcdefgh!",      // no digit
		"Abcdefgh1",      // no special
		"all lower case", // several requirements missing
	}
	for _, pw := range invalid {
		assert.False(t, IsComplexPassword(pw), pw)
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}
