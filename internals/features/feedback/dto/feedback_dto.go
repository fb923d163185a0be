package dto

import (
	"time"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/feedback/model"
)

type FeedbackDTO struct {
	FeedbackID       string         `json:"feedback_id"`
	FeedbackRating   *int           `json:"feedback_rating,omitempty"`
	FeedbackText     string         `json:"feedback_text"`
	FeedbackChannel  string         `json:"feedback_channel"`
	FeedbackEmail    *string        `json:"feedback_email,omitempty"`
	FeedbackPhone    *string        `json:"feedback_phone,omitempty"`
	FeedbackAnalysis datatypes.JSON `json:"feedback_analysis,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

type CreateFeedbackRequest struct {
	FeedbackRating *int    `json:"feedback_rating" validate:"omitempty,min=1,max=5"`
	FeedbackText   string  `json:"feedback_text" validate:"required,min=2,max=4000"`
	FeedbackEmail  *string `json:"feedback_email" validate:"omitempty,email"`
	FeedbackPhone  *string `json:"feedback_phone" validate:"omitempty"`
}

func ToFeedbackDTO(m model.FeedbackModel) FeedbackDTO {
	return FeedbackDTO{
		FeedbackID:       m.FeedbackID.String(),
		FeedbackRating:   m.FeedbackRating,
		FeedbackText:     m.FeedbackText,
		FeedbackChannel:  string(m.FeedbackChannel),
		FeedbackEmail:    m.FeedbackEmail,
		FeedbackPhone:    m.FeedbackPhone,
		FeedbackAnalysis: m.FeedbackAnalysis,
		CreatedAt:        m.FeedbackCreatedAt,
	}
}
