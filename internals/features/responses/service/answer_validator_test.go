package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	surveyModel "rayk_backend/internals/features/surveys/model"
)

func question(qtype surveyModel.QuestionType, required bool) surveyModel.QuestionModel {
	return surveyModel.QuestionModel{
		QuestionID:       uuid.New(),
		QuestionOrgID:    uuid.New(),
		QuestionType:     qtype,
		QuestionRequired: required,
	}
}

func answer(q surveyModel.QuestionModel, value string) SubmittedAnswer {
	return SubmittedAnswer{QuestionID: q.QuestionID.String(), Value: json.RawMessage(value)}
}

func TestBuildAnswersRatingBounds(t *testing.T) {
	csat := question(surveyModel.QuestionTypeRating1To5, true)
	nps := question(surveyModel.QuestionTypeRating0To10, true)
	questions := []surveyModel.QuestionModel{csat, nps}

	rows, err := BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(csat, `5`), answer(nps, `0`)})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(csat, `0`), answer(nps, `0`)})
	assert.Error(t, err)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(csat, `5`), answer(nps, `11`)})
	assert.Error(t, err)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(csat, `3.5`), answer(nps, `0`)})
	assert.Error(t, err)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(csat, `"five"`), answer(nps, `0`)})
	assert.Error(t, err)
}

func TestBuildAnswersRequiredQuestionMissing(t *testing.T) {
	required := question(surveyModel.QuestionTypeRating1To5, true)
	optional := question(surveyModel.QuestionTypeOpenText, false)
	questions := []surveyModel.QuestionModel{required, optional}

	_, err := BuildAnswers(context.Background(), nil, questions, []SubmittedAnswer{})
	require.Error(t, err)
	var answerErr *AnswerError
	require.ErrorAs(t, err, &answerErr)
	assert.Equal(t, required.QuestionID.String(), answerErr.QuestionID)

	// Optional question may stay unanswered.
	rows, err := BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(required, `4`)})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBuildAnswersUnknownAndDuplicateQuestions(t *testing.T) {
	q := question(surveyModel.QuestionTypeRating1To5, false)
	questions := []surveyModel.QuestionModel{q}

	_, err := BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{{QuestionID: uuid.NewString(), Value: json.RawMessage(`3`)}})
	assert.Error(t, err)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `3`), answer(q, `4`)})
	assert.Error(t, err)
}

func TestBuildAnswersMultipleChoice(t *testing.T) {
	q := question(surveyModel.QuestionTypeMultipleChoice, true)
	q.QuestionOptions = datatypes.JSON(`[{"value":"app"},{"value":"store"}]`)
	questions := []surveyModel.QuestionModel{q}

	rows, err := BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `"app"`)})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `"website"`)})
	assert.Error(t, err)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `3`)})
	assert.Error(t, err)
}

func TestBuildAnswersYesNo(t *testing.T) {
	q := question(surveyModel.QuestionTypeYesNo, true)
	questions := []surveyModel.QuestionModel{q}

	rows, err := BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `true`)})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `"yes"`)})
	assert.Error(t, err)
}

func TestBuildAnswersOpenText(t *testing.T) {
	q := question(surveyModel.QuestionTypeOpenText, true)
	questions := []surveyModel.QuestionModel{q}

	rows, err := BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `"الخدمة ممتازة"`)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, q.QuestionID, rows[0].QuestionResponseQuestionID)

	_, err = BuildAnswers(context.Background(), nil, questions,
		[]SubmittedAnswer{answer(q, `"   "`)})
	assert.Error(t, err)
}
