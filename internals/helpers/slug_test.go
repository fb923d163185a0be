package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "customer-feedback", GenerateSlug("Customer Feedback"))
	assert.Equal(t, "q3-2026-survey", GenerateSlug("  Q3 2026 Survey!  "))
	assert.Equal(t, "رضا-العملاء", GenerateSlug("رضا العملاء"))
	assert.Equal(t, "untitled", GenerateSlug("!!!"))
	assert.Equal(t, "untitled", GenerateSlug(""))
}
