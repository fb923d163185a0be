package dto

import "gorm.io/datatypes"

type QuestionStatDTO struct {
	QuestionID   string           `json:"question_id"`
	QuestionType string           `json:"question_type"`
	QuestionText datatypes.JSON   `json:"question_text"`
	Answers      int64            `json:"answers"`
	Average      *float64         `json:"average,omitempty"`
	Histogram    map[string]int64 `json:"histogram,omitempty"`
}

type TimeseriesPointDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DashboardDTO struct {
	SurveyID        string               `json:"survey_id"`
	TotalResponses  int64                `json:"total_responses"`
	DeliveriesSent  int64                `json:"deliveries_sent"`
	CompletionRate  float64              `json:"completion_rate"`
	CSAT            *float64             `json:"csat,omitempty"`
	NPS             *float64             `json:"nps,omitempty"`
	Questions       []QuestionStatDTO    `json:"questions"`
	ResponsesPerDay []TimeseriesPointDTO `json:"responses_per_day"`
	Channels        map[string]int64     `json:"channels"`
	Sentiments      map[string]int64     `json:"sentiments"`
}
