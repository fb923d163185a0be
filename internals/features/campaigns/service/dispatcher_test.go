package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rayk_backend/internals/features/campaigns/model"
	contactModel "rayk_backend/internals/features/contacts/model"
)

func strPtr(s string) *string { return &s }

func TestAddressable(t *testing.T) {
	withEmail := contactModel.ContactModel{ContactEmail: strPtr("a@b.sa")}
	withPhone := contactModel.ContactModel{ContactPhone: strPtr("966551234567")}
	withBoth := contactModel.ContactModel{ContactEmail: strPtr("a@b.sa"), ContactPhone: strPtr("966551234567")}
	empty := contactModel.ContactModel{}

	assert.True(t, Addressable(withEmail, model.CampaignChannelEmail))
	assert.False(t, Addressable(withEmail, model.CampaignChannelSMS))

	assert.True(t, Addressable(withPhone, model.CampaignChannelSMS))
	assert.True(t, Addressable(withPhone, model.CampaignChannelWhatsApp))
	assert.False(t, Addressable(withPhone, model.CampaignChannelEmail))

	assert.True(t, Addressable(withBoth, model.CampaignChannelEmail))
	assert.True(t, Addressable(withBoth, model.CampaignChannelWhatsApp))

	// Web needs no address at all.
	assert.True(t, Addressable(empty, model.CampaignChannelWeb))
	assert.False(t, Addressable(empty, model.CampaignChannelEmail))
}

func TestAddressableOptedOut(t *testing.T) {
	contact := contactModel.ContactModel{
		ContactEmail:    strPtr("a@b.sa"),
		ContactPhone:    strPtr("966551234567"),
		ContactOptedOut: true,
	}
	assert.False(t, Addressable(contact, model.CampaignChannelEmail))
	assert.False(t, Addressable(contact, model.CampaignChannelSMS))
	assert.False(t, Addressable(contact, model.CampaignChannelWeb))
}

func TestAddressableEmptyStrings(t *testing.T) {
	contact := contactModel.ContactModel{ContactEmail: strPtr(""), ContactPhone: strPtr("")}
	assert.False(t, Addressable(contact, model.CampaignChannelEmail))
	assert.False(t, Addressable(contact, model.CampaignChannelSMS))
}
