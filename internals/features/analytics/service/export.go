package service

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	responseModel "rayk_backend/internals/features/responses/model"
	surveyModel "rayk_backend/internals/features/surveys/model"
)

// ExportService streams a survey's responses as wide CSV: one row per
// response, one column per question in position order.
type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

func (s *ExportService) WriteCSV(w io.Writer, survey *surveyModel.SurveyModel) error {
	cw := csv.NewWriter(w)

	header := []string{"response_id", "submitted_at", "channel"}
	questionIDs := make([]uuid.UUID, 0, len(survey.Questions))
	for _, q := range survey.Questions {
		header = append(header, questionLabel(q))
		questionIDs = append(questionIDs, q.QuestionID)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	var batch []responseModel.SurveyResponseModel
	err := s.DB.
		Preload("Answers").
		Where("survey_response_survey_id = ?", survey.SurveyID).
		Order("survey_response_created_at ASC").
		FindInBatches(&batch, 500,
			func(tx *gorm.DB, _ int) error {
				for _, resp := range batch {
					byQuestion := make(map[uuid.UUID]string, len(resp.Answers))
					for _, a := range resp.Answers {
						byQuestion[a.QuestionResponseQuestionID] = renderValue(a.QuestionResponseValue)
					}
					row := []string{
						resp.SurveyResponseID.String(),
						resp.SurveyResponseCreatedAt.Format(time.RFC3339),
						resp.SurveyResponseChannel,
					}
					for _, qid := range questionIDs {
						row = append(row, byQuestion[qid])
					}
					if err := cw.Write(row); err != nil {
						return err
					}
				}
				return nil
			}).Error
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// questionLabel prefers the Arabic text, then English, then the ID.
func questionLabel(q surveyModel.QuestionModel) string {
	var text map[string]string
	if err := json.Unmarshal(q.QuestionText, &text); err == nil {
		if text["ar"] != "" {
			return text["ar"]
		}
		if text["en"] != "" {
			return text["en"]
		}
	}
	return q.QuestionID.String()
}

// renderValue flattens a JSON answer scalar into CSV cell text.
func renderValue(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return string(raw)
	}
}
