package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rayk_backend/internals/features/responses/dto"
	"rayk_backend/internals/features/responses/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

type ResponseAdminController struct {
	DB *gorm.DB
}

func NewResponseAdminController(db *gorm.DB) *ResponseAdminController {
	return &ResponseAdminController{DB: db}
}

// GET /api/a/responses?survey_id=&channel=
func (ctrl *ResponseAdminController) List(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.SurveyResponseModel{}).
		Where("survey_response_org_id = ?", orgID)
	if surveyID := c.Query("survey_id"); surveyID != "" {
		q = q.Where("survey_response_survey_id = ?", surveyID)
	}
	if channel := c.Query("channel"); channel != "" {
		q = q.Where("survey_response_channel = ?", channel)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count responses")
	}

	var responses []model.SurveyResponseModel
	if err := q.Order("survey_response_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&responses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list responses")
	}

	out := make([]dto.ResponseDTO, 0, len(responses))
	for _, m := range responses {
		out = append(out, dto.ToResponseDTO(m, false))
	}
	return helper.SuccessWithMeta(c, "OK", out, helper.BuildMeta(total, p))
}

// GET /api/a/responses/:id - full response with answers.
func (ctrl *ResponseAdminController) GetByID(c *fiber.Ctx) error {
	response, err := ctrl.findOrgResponse(c, true)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", dto.ToResponseDTO(*response, true))
}

// DELETE /api/a/responses/:id - soft delete, answers kept for audit.
func (ctrl *ResponseAdminController) Delete(c *fiber.Ctx) error {
	response, err := ctrl.findOrgResponse(c, false)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(response).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete response")
	}
	return helper.Success(c, "Response deleted", nil)
}

func (ctrl *ResponseAdminController) findOrgResponse(c *fiber.Ctx, withAnswers bool) (*model.SurveyResponseModel, error) {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	q := ctrl.DB
	if withAnswers {
		q = q.Preload("Answers")
	}
	var response model.SurveyResponseModel
	if err := q.First(&response,
		"survey_response_id = ? AND survey_response_org_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Response not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load response")
	}
	return &response, nil
}
