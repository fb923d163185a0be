package dto

import (
	"time"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/contacts/model"
)

type ContactDTO struct {
	ContactID         string         `json:"contact_id"`
	ContactName       string         `json:"contact_name"`
	ContactEmail      *string        `json:"contact_email,omitempty"`
	ContactPhone      *string        `json:"contact_phone,omitempty"`
	ContactLanguage   string         `json:"contact_language"`
	ContactAttributes datatypes.JSON `json:"contact_attributes,omitempty"`
	ContactOptedOut   bool           `json:"contact_opted_out"`
	CreatedAt         time.Time      `json:"created_at"`
}

type CreateContactRequest struct {
	ContactName       string         `json:"contact_name" validate:"required,min=2,max=150"`
	ContactEmail      *string        `json:"contact_email" validate:"omitempty,email"`
	ContactPhone      *string        `json:"contact_phone" validate:"omitempty"`
	ContactLanguage   string         `json:"contact_language" validate:"omitempty,oneof=ar en"`
	ContactAttributes map[string]any `json:"contact_attributes" validate:"omitempty"`
}

type UpdateContactRequest struct {
	ContactName       *string        `json:"contact_name" validate:"omitempty,min=2,max=150"`
	ContactEmail      *string        `json:"contact_email" validate:"omitempty,email"`
	ContactPhone      *string        `json:"contact_phone" validate:"omitempty"`
	ContactLanguage   *string        `json:"contact_language" validate:"omitempty,oneof=ar en"`
	ContactAttributes map[string]any `json:"contact_attributes" validate:"omitempty"`
	ContactOptedOut   *bool          `json:"contact_opted_out"`
}

type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResultDTO struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

type CreateContactGroupRequest struct {
	ContactGroupName        string  `json:"contact_group_name" validate:"required,min=2,max=120"`
	ContactGroupDescription *string `json:"contact_group_description" validate:"omitempty"`
}

type GroupMembersRequest struct {
	ContactIDs []string `json:"contact_ids" validate:"required,min=1,dive,uuid"`
}

func ToContactDTO(m model.ContactModel) ContactDTO {
	return ContactDTO{
		ContactID:         m.ContactID.String(),
		ContactName:       m.ContactName,
		ContactEmail:      m.ContactEmail,
		ContactPhone:      m.ContactPhone,
		ContactLanguage:   m.ContactLanguage,
		ContactAttributes: m.ContactAttributes,
		ContactOptedOut:   m.ContactOptedOut,
		CreatedAt:         m.ContactCreatedAt,
	}
}
