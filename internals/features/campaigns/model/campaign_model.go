package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CampaignChannel string

const (
	CampaignChannelEmail    CampaignChannel = "email"
	CampaignChannelSMS      CampaignChannel = "sms"
	CampaignChannelWhatsApp CampaignChannel = "whatsapp"
	CampaignChannelWeb      CampaignChannel = "web"
)

func (ch CampaignChannel) Valid() bool {
	switch ch {
	case CampaignChannelEmail, CampaignChannelSMS, CampaignChannelWhatsApp, CampaignChannelWeb:
		return true
	default:
		return false
	}
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

/* =========================================================
   MODEL: survey_campaigns
   ========================================================= */

type CampaignModel struct {
	CampaignID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:campaign_id" json:"campaign_id"`
	CampaignOrgID    uuid.UUID `gorm:"type:uuid;not null;index;column:campaign_org_id" json:"campaign_org_id"`
	CampaignSurveyID uuid.UUID `gorm:"type:uuid;not null;index;column:campaign_survey_id" json:"campaign_survey_id"`

	CampaignName    string          `gorm:"type:varchar(150);not null;column:campaign_name" json:"campaign_name"`
	CampaignChannel CampaignChannel `gorm:"type:varchar(12);not null;column:campaign_channel" json:"campaign_channel"`
	CampaignStatus  CampaignStatus  `gorm:"type:varchar(12);not null;default:'draft';column:campaign_status" json:"campaign_status"`

	// Audience: a contact group, or an explicit contact list in
	// campaign_contact_ids (JSONB array of uuids). Group wins when both set.
	CampaignGroupID    *uuid.UUID     `gorm:"type:uuid;column:campaign_group_id" json:"campaign_group_id,omitempty"`
	CampaignContactIDs datatypes.JSON `gorm:"type:jsonb;column:campaign_contact_ids" json:"campaign_contact_ids,omitempty"`

	// Message template with {{name}} and {{link}} placeholders. For email
	// campaigns campaign_subject is used as the subject line.
	CampaignSubject  *string `gorm:"type:varchar(200);column:campaign_subject" json:"campaign_subject,omitempty"`
	CampaignTemplate string  `gorm:"type:text;not null;column:campaign_template" json:"campaign_template"`

	CampaignLaunchedAt *time.Time `gorm:"type:timestamptz;column:campaign_launched_at" json:"campaign_launched_at,omitempty"`

	CampaignCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:campaign_created_at" json:"campaign_created_at"`
	CampaignUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:campaign_updated_at" json:"campaign_updated_at"`
	CampaignDeletedAt gorm.DeletedAt `gorm:"column:campaign_deleted_at;index" json:"campaign_deleted_at,omitempty"`

	Deliveries []DeliveryModel `gorm:"foreignKey:DeliveryCampaignID;references:CampaignID" json:"deliveries,omitempty"`
}

func (CampaignModel) TableName() string { return "survey_campaigns" }
