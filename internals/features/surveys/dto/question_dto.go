package dto

import (
	"gorm.io/datatypes"

	"rayk_backend/internals/features/surveys/model"
)

type QuestionDTO struct {
	QuestionID       string         `json:"question_id"`
	QuestionType     string         `json:"question_type"`
	QuestionText     datatypes.JSON `json:"question_text"`
	QuestionOptions  datatypes.JSON `json:"question_options,omitempty"`
	QuestionPosition int            `json:"question_position"`
	QuestionRequired bool           `json:"question_required"`
}

type CreateQuestionRequest struct {
	QuestionType     string            `json:"question_type" validate:"required,oneof=rating_1_5 rating_0_10 multiple_choice open_text yes_no"`
	QuestionText     map[string]string `json:"question_text" validate:"required"`
	QuestionOptions  []QuestionOption  `json:"question_options" validate:"omitempty,dive"`
	QuestionPosition *int              `json:"question_position" validate:"omitempty,min=0"`
	QuestionRequired *bool             `json:"question_required"`
}

type UpdateQuestionRequest struct {
	QuestionText     map[string]string `json:"question_text" validate:"omitempty"`
	QuestionOptions  []QuestionOption  `json:"question_options" validate:"omitempty,dive"`
	QuestionRequired *bool             `json:"question_required"`
}

type QuestionOption struct {
	Value string            `json:"value" validate:"required,max=80"`
	Label map[string]string `json:"label" validate:"required"`
}

type ReorderQuestionsRequest struct {
	QuestionIDs []string `json:"question_ids" validate:"required,min=1,dive,uuid"`
}

func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:       m.QuestionID.String(),
		QuestionType:     string(m.QuestionType),
		QuestionText:     m.QuestionText,
		QuestionOptions:  m.QuestionOptions,
		QuestionPosition: m.QuestionPosition,
		QuestionRequired: m.QuestionRequired,
	}
}
