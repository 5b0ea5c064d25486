// utils/validation_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15551234567"))
	assert.True(t, ValidatePhone("555-123-4567"))
	assert.True(t, ValidatePhone("(555) 123 4567"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone("0123456"))
}
