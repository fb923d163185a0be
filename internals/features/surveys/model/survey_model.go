package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SurveyStatus string

const (
	SurveyStatusDraft  SurveyStatus = "draft"
	SurveyStatusActive SurveyStatus = "active"
	SurveyStatusClosed SurveyStatus = "closed"
)

func (s SurveyStatus) Valid() bool {
	switch s {
	case SurveyStatusDraft, SurveyStatusActive, SurveyStatusClosed:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: surveys
   ========================================================= */

type SurveyModel struct {
	SurveyID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:survey_id" json:"survey_id"`
	SurveyOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:survey_org_id" json:"survey_org_id"`

	// Bilingual content, {"ar": "...", "en": "..."}.
	SurveyTitle       datatypes.JSON `gorm:"type:jsonb;not null;column:survey_title" json:"survey_title"`
	SurveyDescription datatypes.JSON `gorm:"type:jsonb;column:survey_description" json:"survey_description,omitempty"`

	SurveyStatus SurveyStatus `gorm:"type:varchar(10);not null;default:'draft';column:survey_status" json:"survey_status"`

	// Public web-channel slug; unique per deployment so links are short.
	SurveySlug string `gorm:"type:varchar(160);not null;uniqueIndex;column:survey_slug" json:"survey_slug"`

	// Settings: welcome/thanks text, rtl flag, allow_anonymous.
	SurveySettings datatypes.JSON `gorm:"type:jsonb;column:survey_settings" json:"survey_settings,omitempty"`

	SurveyCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:survey_created_by" json:"survey_created_by"`

	SurveyCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:survey_created_at" json:"survey_created_at"`
	SurveyUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:survey_updated_at" json:"survey_updated_at"`
	SurveyDeletedAt gorm.DeletedAt `gorm:"column:survey_deleted_at;index" json:"survey_deleted_at,omitempty"`

	Questions []QuestionModel `gorm:"foreignKey:QuestionSurveyID;references:SurveyID" json:"questions,omitempty"`
}

func (SurveyModel) TableName() string { return "surveys" }
