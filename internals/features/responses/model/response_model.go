package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: survey_responses
   ========================================================= */

type SurveyResponseModel struct {
	SurveyResponseID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:survey_response_id" json:"survey_response_id"`
	SurveyResponseOrgID    uuid.UUID `gorm:"type:uuid;not null;index;column:survey_response_org_id" json:"survey_response_org_id"`
	SurveyResponseSurveyID uuid.UUID `gorm:"type:uuid;not null;index;column:survey_response_survey_id" json:"survey_response_survey_id"`

	// Set when the response arrived through a campaign delivery token.
	// Unique so one delivery can only ever yield one response.
	SurveyResponseDeliveryID *uuid.UUID `gorm:"type:uuid;uniqueIndex;column:survey_response_delivery_id" json:"survey_response_delivery_id,omitempty"`
	SurveyResponseContactID  *uuid.UUID `gorm:"type:uuid;index;column:survey_response_contact_id" json:"survey_response_contact_id,omitempty"`

	// web | email | sms | whatsapp
	SurveyResponseChannel string `gorm:"type:varchar(10);not null;column:survey_response_channel" json:"survey_response_channel"`

	SurveyResponseCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:survey_response_created_at" json:"survey_response_created_at"`
	SurveyResponseDeletedAt gorm.DeletedAt `gorm:"column:survey_response_deleted_at;index" json:"survey_response_deleted_at,omitempty"`

	Answers []QuestionResponseModel `gorm:"foreignKey:QuestionResponseResponseID;references:SurveyResponseID" json:"answers,omitempty"`
}

func (SurveyResponseModel) TableName() string { return "survey_responses" }

/* =========================================================
   MODEL: survey_question_responses
   ========================================================= */

type QuestionResponseModel struct {
	QuestionResponseID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_response_id" json:"question_response_id"`
	QuestionResponseOrgID      uuid.UUID `gorm:"type:uuid;not null;index;column:question_response_org_id" json:"question_response_org_id"`
	QuestionResponseResponseID uuid.UUID `gorm:"type:uuid;not null;index;column:question_response_response_id" json:"question_response_response_id"`
	QuestionResponseQuestionID uuid.UUID `gorm:"type:uuid;not null;index;column:question_response_question_id" json:"question_response_question_id"`

	// Raw answer value as JSON: number for ratings, string for text and
	// choice values, boolean for yes/no.
	QuestionResponseValue datatypes.JSON `gorm:"type:jsonb;not null;column:question_response_value" json:"question_response_value"`

	// Text-analysis result for open_text answers (sentiment, dialect, keywords).
	QuestionResponseAnalysis datatypes.JSON `gorm:"type:jsonb;column:question_response_analysis" json:"question_response_analysis,omitempty"`

	QuestionResponseCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:question_response_created_at" json:"question_response_created_at"`
}

func (QuestionResponseModel) TableName() string { return "survey_question_responses" }
