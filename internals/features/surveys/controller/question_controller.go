package controller

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rayk_backend/internals/features/surveys/dto"
	"rayk_backend/internals/features/surveys/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

var validateQuestion = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// POST /api/a/surveys/:survey_id/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	survey, err := ctrl.lockSurveyForEdit(c)
	if err != nil {
		return err
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.QuestionText["ar"] == "" && req.QuestionText["en"] == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question_text needs at least one of ar/en")
	}
	qType := model.QuestionType(req.QuestionType)
	if qType == model.QuestionTypeMultipleChoice && len(req.QuestionOptions) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "multiple_choice needs at least 2 options")
	}

	position := 0
	if req.QuestionPosition != nil {
		position = *req.QuestionPosition
	} else {
		var maxPos *int
		ctrl.DB.Model(&model.QuestionModel{}).
			Where("question_survey_id = ?", survey.SurveyID).
			Select("MAX(question_position)").Scan(&maxPos)
		if maxPos != nil {
			position = *maxPos + 1
		}
	}

	required := true
	if req.QuestionRequired != nil {
		required = *req.QuestionRequired
	}

	question := model.QuestionModel{
		QuestionOrgID:    survey.SurveyOrgID,
		QuestionSurveyID: survey.SurveyID,
		QuestionType:     qType,
		QuestionText:     dto.JSONFromMap(req.QuestionText),
		QuestionOptions:  optionsJSON(req.QuestionOptions),
		QuestionPosition: position,
		QuestionRequired: required,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", dto.ToQuestionDTO(question))
}

// PUT /api/a/surveys/:survey_id/questions/:id
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	survey, err := ctrl.lockSurveyForEdit(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question,
		"question_id = ? AND question_survey_id = ?", c.Params("id"), survey.SurveyID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}

	updates := map[string]interface{}{}
	if len(req.QuestionText) > 0 {
		updates["question_text"] = dto.JSONFromMap(req.QuestionText)
	}
	if len(req.QuestionOptions) > 0 {
		if question.QuestionType == model.QuestionTypeMultipleChoice && len(req.QuestionOptions) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "multiple_choice needs at least 2 options")
		}
		updates["question_options"] = optionsJSON(req.QuestionOptions)
	}
	if req.QuestionRequired != nil {
		updates["question_required"] = *req.QuestionRequired
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&question).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update question")
		}
	}
	return helper.Success(c, "Question updated", dto.ToQuestionDTO(question))
}

// DELETE /api/a/surveys/:survey_id/questions/:id
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	survey, err := ctrl.lockSurveyForEdit(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("question_id = ? AND question_survey_id = ?",
		c.Params("id"), survey.SurveyID).Delete(&model.QuestionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Question not found")
	}
	return helper.Success(c, "Question deleted", nil)
}

// POST /api/a/surveys/:survey_id/questions/reorder - full ordering, one call.
// Partial lists are rejected so positions stay dense and duplicate-free.
func (ctrl *QuestionController) Reorder(c *fiber.Ctx) error {
	survey, err := ctrl.lockSurveyForEdit(c)
	if err != nil {
		return err
	}

	var req dto.ReorderQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var total int64
	if err := ctrl.DB.Model(&model.QuestionModel{}).
		Where("question_survey_id = ?", survey.SurveyID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load questions")
	}
	if err := validateOrdering(req.QuestionIDs, total); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for i, qid := range req.QuestionIDs {
			res := tx.Model(&model.QuestionModel{}).
				Where("question_id = ? AND question_survey_id = ?", qid, survey.SurveyID).
				Update("question_position", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown question in ordering")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reorder questions")
	}
	return helper.Success(c, "Questions reordered", nil)
}

// validateOrdering requires the request to name every question of the
// survey exactly once, so rewritten positions cover the whole set.
func validateOrdering(ids []string, total int64) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return errors.New("duplicate question in ordering")
		}
		seen[id] = struct{}{}
	}
	if int64(len(ids)) != total {
		return errors.New("ordering must include every question")
	}
	return nil
}

// lockSurveyForEdit loads the survey under the active org and rejects edits
// once any response exists, keeping collected data consistent with the
// questionnaire that produced it.
func (ctrl *QuestionController) lockSurveyForEdit(c *fiber.Ctx) (*model.SurveyModel, error) {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	surveyID := c.Params("survey_id")
	if _, err := uuid.Parse(surveyID); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid survey ID")
	}

	var survey model.SurveyModel
	if err := ctrl.DB.First(&survey,
		"survey_id = ? AND survey_org_id = ?", surveyID, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load survey")
	}

	var responseCount int64
	if err := ctrl.DB.Table("survey_responses").
		Where("survey_response_survey_id = ? AND survey_response_deleted_at IS NULL", survey.SurveyID).
		Count(&responseCount).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check responses")
	}
	if responseCount > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Survey already has responses; questions are locked")
	}
	return &survey, nil
}

func optionsJSON(opts []dto.QuestionOption) datatypes.JSON {
	if len(opts) == 0 {
		return nil
	}
	raw, _ := json.Marshal(opts)
	return datatypes.JSON(raw)
}
