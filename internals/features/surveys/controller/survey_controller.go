package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rayk_backend/internals/features/surveys/dto"
	"rayk_backend/internals/features/surveys/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

var validateSurvey = validator.New()

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

// POST /api/a/surveys
func (ctrl *SurveyController) Create(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSurvey.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !hasBilingualText(req.SurveyTitle) {
		return fiber.NewError(fiber.StatusBadRequest, "survey_title needs at least one of ar/en")
	}

	userID, _ := c.Locals("user_id").(string)
	uid, _ := uuid.Parse(userID)

	title := req.SurveyTitle["ar"]
	if title == "" {
		title = req.SurveyTitle["en"]
	}
	survey := model.SurveyModel{
		SurveyOrgID:       orgID,
		SurveyTitle:       dto.JSONFromMap(req.SurveyTitle),
		SurveyDescription: dto.JSONFromMap(req.SurveyDescription),
		SurveySettings:    dto.JSONFromAny(req.SurveySettings),
		SurveySlug:        helper.GenerateSlug(title) + "-" + uuid.NewString()[:8],
		SurveyCreatedBy:   uid,
	}
	if err := ctrl.DB.Create(&survey).Error; err != nil {
		log.Println("[ERROR] create survey:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create survey")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Survey created", dto.ToSurveyDTO(survey, false))
}

// GET /api/a/surveys
func (ctrl *SurveyController) List(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.SurveyModel{}).Where("survey_org_id = ?", orgID)
	if status := c.Query("status"); status != "" {
		if !model.SurveyStatus(status).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("survey_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count surveys")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "survey_created_at",
		"updated_at": "survey_updated_at",
		"status":     "survey_status",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sort")
	}

	var surveys []model.SurveyModel
	if err := q.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&surveys).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list surveys")
	}

	out := make([]dto.SurveyDTO, 0, len(surveys))
	for _, s := range surveys {
		out = append(out, dto.ToSurveyDTO(s, false))
	}
	return helper.SuccessWithMeta(c, "OK", out, helper.BuildMeta(total, p))
}

// GET /api/a/surveys/:id
func (ctrl *SurveyController) GetByID(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.
		Order("question_position ASC").
		Find(&survey.Questions, "question_survey_id = ?", survey.SurveyID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load questions")
	}
	return helper.Success(c, "OK", dto.ToSurveyDTO(*survey, true))
}

// PUT /api/a/surveys/:id
func (ctrl *SurveyController) Update(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSurvey.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if len(req.SurveyTitle) > 0 {
		if !hasBilingualText(req.SurveyTitle) {
			return fiber.NewError(fiber.StatusBadRequest, "survey_title needs at least one of ar/en")
		}
		updates["survey_title"] = dto.JSONFromMap(req.SurveyTitle)
	}
	if len(req.SurveyDescription) > 0 {
		updates["survey_description"] = dto.JSONFromMap(req.SurveyDescription)
	}
	if len(req.SurveySettings) > 0 {
		updates["survey_settings"] = dto.JSONFromAny(req.SurveySettings)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(survey).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update survey")
		}
	}
	return helper.Success(c, "Survey updated", dto.ToSurveyDTO(*survey, false))
}

// POST /api/a/surveys/:id/activate - a survey with no questions cannot go live.
func (ctrl *SurveyController) Activate(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}
	if survey.SurveyStatus == model.SurveyStatusActive {
		return helper.Success(c, "Survey already active", dto.ToSurveyDTO(*survey, false))
	}

	var questionCount int64
	if err := ctrl.DB.Model(&model.QuestionModel{}).
		Where("question_survey_id = ?", survey.SurveyID).
		Count(&questionCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count questions")
	}
	if questionCount == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Cannot activate a survey without questions")
	}

	if err := ctrl.DB.Model(survey).
		Update("survey_status", model.SurveyStatusActive).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to activate survey")
	}
	survey.SurveyStatus = model.SurveyStatusActive
	return helper.Success(c, "Survey activated", dto.ToSurveyDTO(*survey, false))
}

// POST /api/a/surveys/:id/close
func (ctrl *SurveyController) Close(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Model(survey).
		Update("survey_status", model.SurveyStatusClosed).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to close survey")
	}
	survey.SurveyStatus = model.SurveyStatusClosed
	return helper.Success(c, "Survey closed", dto.ToSurveyDTO(*survey, false))
}

// POST /api/a/surveys/:id/duplicate - copies the survey and its questions
// back into draft status under a fresh slug.
func (ctrl *SurveyController) Duplicate(c *fiber.Ctx) error {
	src, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.Order("question_position ASC").
		Find(&questions, "question_survey_id = ?", src.SurveyID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load questions")
	}

	userID, _ := c.Locals("user_id").(string)
	uid, _ := uuid.Parse(userID)

	dup := model.SurveyModel{
		SurveyOrgID:       src.SurveyOrgID,
		SurveyTitle:       src.SurveyTitle,
		SurveyDescription: src.SurveyDescription,
		SurveySettings:    src.SurveySettings,
		SurveySlug:        src.SurveySlug[:min(len(src.SurveySlug), 150)] + "-" + uuid.NewString()[:8],
		SurveyCreatedBy:   uid,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dup).Error; err != nil {
			return err
		}
		for i := range questions {
			q := model.QuestionModel{
				QuestionOrgID:    dup.SurveyOrgID,
				QuestionSurveyID: dup.SurveyID,
				QuestionType:     questions[i].QuestionType,
				QuestionText:     questions[i].QuestionText,
				QuestionOptions:  questions[i].QuestionOptions,
				QuestionPosition: questions[i].QuestionPosition,
				QuestionRequired: questions[i].QuestionRequired,
			}
			if err := tx.Create(&q).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] duplicate survey:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to duplicate survey")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Survey duplicated", dto.ToSurveyDTO(dup, false))
}

// DELETE /api/a/surveys/:id (soft delete)
func (ctrl *SurveyController) Delete(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(survey).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete survey")
	}
	return helper.Success(c, "Survey deleted", nil)
}

func (ctrl *SurveyController) findOrgSurvey(c *fiber.Ctx) (*model.SurveyModel, error) {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid survey ID")
	}

	var survey model.SurveyModel
	if err := ctrl.DB.First(&survey,
		"survey_id = ? AND survey_org_id = ?", id, orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load survey")
	}
	return &survey, nil
}

// hasBilingualText reports whether at least one of the ar/en entries
// carries text, so a title can never be blanked on create or update.
func hasBilingualText(m map[string]string) bool {
	return m["ar"] != "" || m["en"] != ""
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
