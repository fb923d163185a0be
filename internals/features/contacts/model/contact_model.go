package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContactModel struct {
	ContactID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contact_id" json:"contact_id"`
	ContactOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:contact_org_id;index:idx_contact_org_email,unique,priority:1;index:idx_contact_org_phone,unique,priority:1" json:"contact_org_id"`

	ContactName  string  `gorm:"type:varchar(150);not null;column:contact_name" json:"contact_name"`
	ContactEmail *string `gorm:"type:varchar(255);column:contact_email;index:idx_contact_org_email,unique,priority:2,where:contact_email IS NOT NULL" json:"contact_email,omitempty"`

	// Normalized E.164 digits without plus (9665XXXXXXXX).
	ContactPhone *string `gorm:"type:varchar(20);column:contact_phone;index:idx_contact_org_phone,unique,priority:2,where:contact_phone IS NOT NULL" json:"contact_phone,omitempty"`

	// Preferred survey language, "ar" or "en".
	ContactLanguage string `gorm:"type:varchar(5);not null;default:'ar';column:contact_language" json:"contact_language"`

	// Free-form segmentation attributes (city, plan, ...).
	ContactAttributes datatypes.JSON `gorm:"type:jsonb;column:contact_attributes" json:"contact_attributes,omitempty"`

	// Set by STOP replies and manual opt-out; opted-out contacts are
	// excluded from every campaign fan-out.
	ContactOptedOut bool `gorm:"type:boolean;not null;default:false;column:contact_opted_out" json:"contact_opted_out"`

	ContactCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:contact_created_at" json:"contact_created_at"`
	ContactUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:contact_updated_at" json:"contact_updated_at"`
	ContactDeletedAt gorm.DeletedAt `gorm:"column:contact_deleted_at;index" json:"contact_deleted_at,omitempty"`
}

func (ContactModel) TableName() string { return "contacts" }

// The composite partial indexes in the tags above match the migration:
//   CREATE UNIQUE INDEX idx_contact_org_email ON contacts(contact_org_id, contact_email) WHERE contact_email IS NOT NULL AND contact_deleted_at IS NULL;
//   CREATE UNIQUE INDEX idx_contact_org_phone ON contacts(contact_org_id, contact_phone) WHERE contact_phone IS NOT NULL AND contact_deleted_at IS NULL;
