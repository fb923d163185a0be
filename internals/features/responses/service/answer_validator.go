package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/responses/model"
	surveyModel "rayk_backend/internals/features/surveys/model"
	analysisService "rayk_backend/internals/features/textanalysis/service"
)

// AnswerError is a per-answer validation failure that maps to a 400.
type AnswerError struct {
	QuestionID string
	Reason     string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Reason)
}

type SubmittedAnswer struct {
	QuestionID string
	Value      json.RawMessage
}

// BuildAnswers validates submitted values against the survey's questions and
// returns the rows to insert. Open-text answers are analyzed inline so the
// sentiment is queryable without a second pass.
func BuildAnswers(
	ctx context.Context,
	analyzer *analysisService.Analyzer,
	questions []surveyModel.QuestionModel,
	answers []SubmittedAnswer,
) ([]model.QuestionResponseModel, error) {
	byID := make(map[string]surveyModel.QuestionModel, len(questions))
	for _, q := range questions {
		byID[q.QuestionID.String()] = q
	}

	seen := make(map[string]bool, len(answers))
	rows := make([]model.QuestionResponseModel, 0, len(answers))
	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			return nil, &AnswerError{QuestionID: ans.QuestionID, Reason: "does not belong to this survey"}
		}
		if seen[ans.QuestionID] {
			return nil, &AnswerError{QuestionID: ans.QuestionID, Reason: "answered twice"}
		}
		seen[ans.QuestionID] = true

		value, analysis, err := validateValue(ctx, analyzer, q, ans.Value)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.QuestionResponseModel{
			QuestionResponseOrgID:      q.QuestionOrgID,
			QuestionResponseQuestionID: q.QuestionID,
			QuestionResponseValue:      value,
			QuestionResponseAnalysis:   analysis,
		})
	}

	for _, q := range questions {
		if q.QuestionRequired && !seen[q.QuestionID.String()] {
			return nil, &AnswerError{QuestionID: q.QuestionID.String(), Reason: "answer required"}
		}
	}
	return rows, nil
}

func validateValue(
	ctx context.Context,
	analyzer *analysisService.Analyzer,
	q surveyModel.QuestionModel,
	raw json.RawMessage,
) (datatypes.JSON, datatypes.JSON, error) {
	qid := q.QuestionID.String()

	switch q.QuestionType {
	case surveyModel.QuestionTypeRating1To5, surveyModel.QuestionTypeRating0To10:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil || n != math.Trunc(n) {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "rating must be a whole number"}
		}
		min, max, _ := q.QuestionType.RatingBounds()
		if int(n) < min || int(n) > max {
			return nil, nil, &AnswerError{
				QuestionID: qid,
				Reason:     fmt.Sprintf("rating must be between %d and %d", min, max),
			}
		}
		return datatypes.JSON(raw), nil, nil

	case surveyModel.QuestionTypeYesNo:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "answer must be true or false"}
		}
		return datatypes.JSON(raw), nil, nil

	case surveyModel.QuestionTypeMultipleChoice:
		var choice string
		if err := json.Unmarshal(raw, &choice); err != nil {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "choice must be a string value"}
		}
		if !optionExists(q.QuestionOptions, choice) {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "choice is not one of the options"}
		}
		return datatypes.JSON(raw), nil, nil

	case surveyModel.QuestionTypeOpenText:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "answer must be a string"}
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "answer must not be empty"}
		}
		if len([]rune(text)) > 4000 {
			return nil, nil, &AnswerError{QuestionID: qid, Reason: "answer too long"}
		}
		var analysis datatypes.JSON
		if analyzer != nil {
			result := analyzer.Analyze(ctx, text)
			if rawResult, err := json.Marshal(result); err == nil {
				analysis = datatypes.JSON(rawResult)
			}
		}
		return datatypes.JSON(raw), analysis, nil

	default:
		return nil, nil, &AnswerError{QuestionID: qid, Reason: "unknown question type"}
	}
}

func optionExists(options datatypes.JSON, value string) bool {
	var parsed []struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(options, &parsed); err != nil {
		return false
	}
	for _, opt := range parsed {
		if opt.Value == value {
			return true
		}
	}
	return false
}
