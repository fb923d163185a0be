package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeRating1To5     QuestionType = "rating_1_5"  // CSAT
	QuestionTypeRating0To10    QuestionType = "rating_0_10" // NPS
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeOpenText       QuestionType = "open_text"
	QuestionTypeYesNo          QuestionType = "yes_no"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeRating1To5, QuestionTypeRating0To10,
		QuestionTypeMultipleChoice, QuestionTypeOpenText, QuestionTypeYesNo:
		return true
	default:
		return false
	}
}

// RatingBounds returns the inclusive numeric range for rating questions;
// ok is false for non-rating types.
func (t QuestionType) RatingBounds() (min, max int, ok bool) {
	switch t {
	case QuestionTypeRating1To5:
		return 1, 5, true
	case QuestionTypeRating0To10:
		return 0, 10, true
	case QuestionTypeYesNo:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

/* =========================================================
   MODEL: survey_questions
   ========================================================= */

type QuestionModel struct {
	QuestionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`
	QuestionOrgID    uuid.UUID `gorm:"type:uuid;not null;index;column:question_org_id" json:"question_org_id"`
	QuestionSurveyID uuid.UUID `gorm:"type:uuid;not null;index;column:question_survey_id" json:"question_survey_id"`

	QuestionType QuestionType `gorm:"type:varchar(20);not null;column:question_type" json:"question_type"`

	// Bilingual question text, {"ar": "...", "en": "..."}.
	QuestionText datatypes.JSON `gorm:"type:jsonb;not null;column:question_text" json:"question_text"`

	// For multiple_choice: [{"value":"...","label":{"ar":"...","en":"..."}}, ...]
	QuestionOptions datatypes.JSON `gorm:"type:jsonb;column:question_options" json:"question_options,omitempty"`

	QuestionPosition int  `gorm:"type:int;not null;default:0;column:question_position" json:"question_position"`
	QuestionRequired bool `gorm:"type:boolean;not null;default:true;column:question_required" json:"question_required"`

	QuestionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:question_updated_at" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index" json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "survey_questions" }
