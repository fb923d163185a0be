package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/responses/model"
)

type AnswerInput struct {
	QuestionID string          `json:"question_id" validate:"required,uuid"`
	Value      json.RawMessage `json:"value" validate:"required"`
}

type SubmitResponseRequest struct {
	Answers []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

type AnswerDTO struct {
	QuestionResponseID string         `json:"question_response_id"`
	QuestionID         string         `json:"question_id"`
	Value              datatypes.JSON `json:"value"`
	Analysis           datatypes.JSON `json:"analysis,omitempty"`
}

type ResponseDTO struct {
	SurveyResponseID string      `json:"survey_response_id"`
	SurveyID         string      `json:"survey_id"`
	DeliveryID       *string     `json:"delivery_id,omitempty"`
	ContactID        *string     `json:"contact_id,omitempty"`
	Channel          string      `json:"channel"`
	Answers          []AnswerDTO `json:"answers,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

func ToAnswerDTO(m model.QuestionResponseModel) AnswerDTO {
	return AnswerDTO{
		QuestionResponseID: m.QuestionResponseID.String(),
		QuestionID:         m.QuestionResponseQuestionID.String(),
		Value:              m.QuestionResponseValue,
		Analysis:           m.QuestionResponseAnalysis,
	}
}

func ToResponseDTO(m model.SurveyResponseModel, withAnswers bool) ResponseDTO {
	out := ResponseDTO{
		SurveyResponseID: m.SurveyResponseID.String(),
		SurveyID:         m.SurveyResponseSurveyID.String(),
		Channel:          m.SurveyResponseChannel,
		CreatedAt:        m.SurveyResponseCreatedAt,
	}
	if m.SurveyResponseDeliveryID != nil {
		s := m.SurveyResponseDeliveryID.String()
		out.DeliveryID = &s
	}
	if m.SurveyResponseContactID != nil {
		s := m.SurveyResponseContactID.String()
		out.ContactID = &s
	}
	if withAnswers {
		out.Answers = make([]AnswerDTO, 0, len(m.Answers))
		for _, a := range m.Answers {
			out.Answers = append(out.Answers, ToAnswerDTO(a))
		}
	}
	return out
}
