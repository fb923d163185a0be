package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusFailed    DeliveryStatus = "failed"
	DeliveryStatusResponded DeliveryStatus = "responded"
)

// Terminal reports whether the delivery needs no further vendor action.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryStatusSent || s == DeliveryStatusFailed || s == DeliveryStatusResponded
}

/* =========================================================
   MODEL: survey_deliveries - one row per contact per campaign
   ========================================================= */

type DeliveryModel struct {
	DeliveryID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:delivery_id" json:"delivery_id"`
	DeliveryOrgID      uuid.UUID `gorm:"type:uuid;not null;index;column:delivery_org_id" json:"delivery_org_id"`
	DeliveryCampaignID uuid.UUID `gorm:"type:uuid;not null;index;column:delivery_campaign_id" json:"delivery_campaign_id"`
	DeliveryContactID  uuid.UUID `gorm:"type:uuid;not null;index;column:delivery_contact_id" json:"delivery_contact_id"`

	// Response token embedded in the survey link; public submission by this
	// token marks the delivery responded.
	DeliveryToken uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:delivery_token" json:"delivery_token"`

	DeliveryChannel CampaignChannel `gorm:"type:varchar(12);not null;column:delivery_channel" json:"delivery_channel"`
	DeliveryStatus  DeliveryStatus  `gorm:"type:varchar(12);not null;default:'pending';column:delivery_status" json:"delivery_status"`

	// Vendor message SID/ID when the provider accepted the send.
	DeliveryVendorMessageID *string `gorm:"type:varchar(128);index;column:delivery_vendor_message_id" json:"delivery_vendor_message_id,omitempty"`
	DeliveryError           *string `gorm:"type:text;column:delivery_error" json:"delivery_error,omitempty"`

	DeliverySentAt      *time.Time `gorm:"type:timestamptz;column:delivery_sent_at" json:"delivery_sent_at,omitempty"`
	DeliveryRespondedAt *time.Time `gorm:"type:timestamptz;column:delivery_responded_at" json:"delivery_responded_at,omitempty"`

	DeliveryCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:delivery_created_at" json:"delivery_created_at"`
	DeliveryUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:delivery_updated_at" json:"delivery_updated_at"`
	DeliveryDeletedAt gorm.DeletedAt `gorm:"column:delivery_deleted_at;index" json:"delivery_deleted_at,omitempty"`
}

func (DeliveryModel) TableName() string { return "survey_deliveries" }
