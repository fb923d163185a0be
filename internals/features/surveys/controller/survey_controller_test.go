package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasBilingualText(t *testing.T) {
	assert.True(t, hasBilingualText(map[string]string{"ar": "رضا العملاء"}))
	assert.True(t, hasBilingualText(map[string]string{"en": "Customer Satisfaction"}))
	assert.True(t, hasBilingualText(map[string]string{"ar": "رضا", "en": "CSAT"}))

	// A title update must not be able to blank both languages.
	assert.False(t, hasBilingualText(map[string]string{}))
	assert.False(t, hasBilingualText(map[string]string{"ar": "", "en": ""}))
	assert.False(t, hasBilingualText(nil))
}

func TestValidateOrdering(t *testing.T) {
	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()

	assert.NoError(t, validateOrdering([]string{a, b, c}, 3))
	assert.NoError(t, validateOrdering(nil, 0))

	// Partial lists would leave stale positions on the unlisted questions.
	assert.Error(t, validateOrdering([]string{a, b}, 3))
	// Duplicates collapse the covered set.
	assert.Error(t, validateOrdering([]string{a, a, b}, 3))
	// More IDs than questions means an unknown ID slipped in.
	assert.Error(t, validateOrdering([]string{a, b, c}, 2))
}
