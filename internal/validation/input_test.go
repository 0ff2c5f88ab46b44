package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail_Valid(t *testing.T) {
	assert.NoError(t, ValidateEmail("jo@example.com"))
	assert.NoError(t, ValidateEmail("ivan.petrov+tag@mail.example.org"))
}

func TestValidateEmail_Invalid(t *testing.T) {
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("jo@example"))
	assert.Error(t, ValidateEmail("jo @example.com"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidateLength_Bounds(t *testing.T) {
	// 9 символов — мало, 12 — достаточно
	assert.Error(t, ValidateLength("сообщение", "shortteks", MinContactMessageLength, MaxContactMessageLength))
	assert.NoError(t, ValidateLength("сообщение", "hello there!", MinContactMessageLength, MaxContactMessageLength))
}

func TestValidateNonEmpty(t *testing.T) {
	assert.Error(t, ValidateNonEmpty("имя", "   "))
	assert.NoError(t, ValidateNonEmpty("имя", "Jo"))
}
