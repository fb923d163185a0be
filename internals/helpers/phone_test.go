package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0551234567", "966551234567"},
		{"+966551234567", "966551234567"},
		{"00966551234567", "966551234567"},
		{"966551234567", "966551234567"},
		{"055 123 4567", "966551234567"},
		{"+966 55-123-4567", "966551234567"},
		{"551234567", "966551234567"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("0551234567"))
	assert.True(t, ValidatePhone("+966551234567"))

	assert.False(t, ValidatePhone(""))
	assert.False(t, ValidatePhone("12345"))
	// Landline prefix, not a Saudi mobile.
	assert.False(t, ValidatePhone("0112345678"))
	// Too many digits.
	assert.False(t, ValidatePhone("05512345678"))
}

func TestDisplayPhone(t *testing.T) {
	assert.Equal(t, "+966 55 123 4567", DisplayPhone("0551234567"))
	// Unparseable input is returned untouched.
	assert.Equal(t, "12345", DisplayPhone("12345"))
}
