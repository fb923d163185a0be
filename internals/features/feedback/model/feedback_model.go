package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FeedbackChannel string

const (
	FeedbackChannelWeb      FeedbackChannel = "web"
	FeedbackChannelSMS      FeedbackChannel = "sms"
	FeedbackChannelWhatsApp FeedbackChannel = "whatsapp"
	FeedbackChannelEmail    FeedbackChannel = "email"
)

func (ch FeedbackChannel) Valid() bool {
	switch ch {
	case FeedbackChannelWeb, FeedbackChannelSMS, FeedbackChannelWhatsApp, FeedbackChannelEmail:
		return true
	default:
		return false
	}
}

// FeedbackModel is standalone feedback not tied to a survey: web widget
// submissions and inbound SMS/WhatsApp replies all land here, with the
// analyzer result in feedback_analysis.
type FeedbackModel struct {
	FeedbackID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:feedback_id" json:"feedback_id"`
	FeedbackOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:feedback_org_id" json:"feedback_org_id"`

	FeedbackRating  *int            `gorm:"type:int;column:feedback_rating" json:"feedback_rating,omitempty"` // 1..5
	FeedbackText    string          `gorm:"type:text;not null;column:feedback_text" json:"feedback_text"`
	FeedbackChannel FeedbackChannel `gorm:"type:varchar(12);not null;default:'web';column:feedback_channel" json:"feedback_channel"`

	FeedbackContactID *uuid.UUID `gorm:"type:uuid;column:feedback_contact_id" json:"feedback_contact_id,omitempty"`
	FeedbackEmail     *string    `gorm:"type:varchar(255);column:feedback_email" json:"feedback_email,omitempty"`
	FeedbackPhone     *string    `gorm:"type:varchar(20);column:feedback_phone" json:"feedback_phone,omitempty"`

	// Analyzer output: {"sentiment":...,"score":...,"dialect":...,"keywords":[...],"source":...}
	FeedbackAnalysis datatypes.JSON `gorm:"type:jsonb;column:feedback_analysis" json:"feedback_analysis,omitempty"`

	FeedbackCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:feedback_created_at" json:"feedback_created_at"`
	FeedbackDeletedAt gorm.DeletedAt `gorm:"column:feedback_deleted_at;index" json:"feedback_deleted_at,omitempty"`
}

func (FeedbackModel) TableName() string { return "feedbacks" }
