package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Email and phone uniqueness is scoped per organization; the composite
// indexes must carry the org column ahead of the contact column.
func TestContactUniqueIndexesAreOrgScoped(t *testing.T) {
	s, err := schema.Parse(&ContactModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	indexes := s.ParseIndexes()

	email, ok := indexes["idx_contact_org_email"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", email.Class)
	require.Len(t, email.Fields, 2)
	assert.Equal(t, "contact_org_id", email.Fields[0].DBName)
	assert.Equal(t, "contact_email", email.Fields[1].DBName)

	phone, ok := indexes["idx_contact_org_phone"]
	require.True(t, ok)
	assert.Equal(t, "UNIQUE", phone.Class)
	require.Len(t, phone.Fields, 2)
	assert.Equal(t, "contact_org_id", phone.Fields[0].DBName)
	assert.Equal(t, "contact_phone", phone.Fields[1].DBName)
}
