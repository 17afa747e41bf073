package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@x.com"))
	assert.NoError(t, ValidateEmail("ana.garcia+orders@example.co.uk"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+34600123456"))
	assert.NoError(t, ValidatePhone("600 123 456"))
	assert.NoError(t, ValidatePhone("600-123-456"))
	assert.Error(t, ValidatePhone("abc"))
	assert.Error(t, ValidatePhone(""))
	assert.Error(t, ValidatePhone("12"))
}

func TestValidateDeviceToken(t *testing.T) {
	assert.NoError(t, ValidateDeviceToken("DEV-123"))
	assert.Error(t, ValidateDeviceToken("abc"))
	assert.Error(t, ValidateDeviceToken(""))
}
