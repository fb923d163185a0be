package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/surveys/model"
)

type SurveyDTO struct {
	SurveyID          string         `json:"survey_id"`
	SurveyTitle       datatypes.JSON `json:"survey_title"`
	SurveyDescription datatypes.JSON `json:"survey_description,omitempty"`
	SurveyStatus      string         `json:"survey_status"`
	SurveySlug        string         `json:"survey_slug"`
	SurveySettings    datatypes.JSON `json:"survey_settings,omitempty"`
	Questions         []QuestionDTO  `json:"questions,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type CreateSurveyRequest struct {
	SurveyTitle       map[string]string `json:"survey_title" validate:"required"`
	SurveyDescription map[string]string `json:"survey_description" validate:"omitempty"`
	SurveySettings    map[string]any    `json:"survey_settings" validate:"omitempty"`
}

type UpdateSurveyRequest struct {
	SurveyTitle       map[string]string `json:"survey_title" validate:"omitempty"`
	SurveyDescription map[string]string `json:"survey_description" validate:"omitempty"`
	SurveySettings    map[string]any    `json:"survey_settings" validate:"omitempty"`
}

func ToSurveyDTO(m model.SurveyModel, withQuestions bool) SurveyDTO {
	out := SurveyDTO{
		SurveyID:          m.SurveyID.String(),
		SurveyTitle:       m.SurveyTitle,
		SurveyDescription: m.SurveyDescription,
		SurveyStatus:      string(m.SurveyStatus),
		SurveySlug:        m.SurveySlug,
		SurveySettings:    m.SurveySettings,
		CreatedAt:         m.SurveyCreatedAt,
		UpdatedAt:         m.SurveyUpdatedAt,
	}
	if withQuestions {
		out.Questions = make([]QuestionDTO, 0, len(m.Questions))
		for _, q := range m.Questions {
			out.Questions = append(out.Questions, ToQuestionDTO(q))
		}
	}
	return out
}

func JSONFromMap(m map[string]string) datatypes.JSON {
	if len(m) == 0 {
		return nil
	}
	raw, _ := json.Marshal(m)
	return datatypes.JSON(raw)
}

func JSONFromAny(m map[string]any) datatypes.JSON {
	if len(m) == 0 {
		return nil
	}
	raw, _ := json.Marshal(m)
	return datatypes.JSON(raw)
}
