package controller

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsService "rayk_backend/internals/features/analytics/service"
	surveyModel "rayk_backend/internals/features/surveys/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

type AnalyticsController struct {
	DB        *gorm.DB
	Dashboard *analyticsService.DashboardService
	Export    *analyticsService.ExportService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{
		DB:        db,
		Dashboard: analyticsService.NewDashboardService(db),
		Export:    analyticsService.NewExportService(db),
	}
}

// GET /api/a/surveys/:id/dashboard
func (ctrl *AnalyticsController) GetDashboard(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}
	dashboard, err := ctrl.Dashboard.BuildDashboard(survey)
	if err != nil {
		log.Println("[ERROR] build dashboard:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	return helper.Success(c, "OK", dashboard)
}

// GET /api/a/surveys/:id/export - wide CSV of all responses.
func (ctrl *AnalyticsController) ExportCSV(c *fiber.Ctx) error {
	survey, err := ctrl.findOrgSurvey(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := ctrl.Export.WriteCSV(&buf, survey); err != nil {
		log.Println("[ERROR] export responses:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to export responses")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="responses-`+survey.SurveySlug+`.csv"`)
	return c.Send(buf.Bytes())
}

func (ctrl *AnalyticsController) findOrgSurvey(c *fiber.Ctx) (*surveyModel.SurveyModel, error) {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var survey surveyModel.SurveyModel
	err = ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_position ASC")
		}).
		First(&survey, "survey_id = ? AND survey_org_id = ?", c.Params("id"), orgID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load survey")
	}
	return &survey, nil
}
