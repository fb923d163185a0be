package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rayk_backend/internals/features/campaigns/dto"
	"rayk_backend/internals/features/campaigns/model"
	campaignService "rayk_backend/internals/features/campaigns/service"
	surveyModel "rayk_backend/internals/features/surveys/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

var validateCampaign = validator.New()

type CampaignController struct {
	DB         *gorm.DB
	Dispatcher *campaignService.Dispatcher
}

func NewCampaignController(db *gorm.DB, dispatcher *campaignService.Dispatcher) *CampaignController {
	return &CampaignController{DB: db, Dispatcher: dispatcher}
}

// POST /api/a/campaigns
func (ctrl *CampaignController) Create(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCampaign.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.CampaignGroupID == nil && len(req.ContactIDs) == 0 &&
		req.CampaignChannel != string(model.CampaignChannelWeb) {
		return fiber.NewError(fiber.StatusBadRequest, "Campaign needs a group or explicit contacts")
	}
	if !strings.Contains(req.CampaignTemplate, "{{link}}") &&
		!strings.Contains(req.CampaignTemplate, "{{ link }}") {
		return fiber.NewError(fiber.StatusBadRequest, "Template must contain the {{link}} placeholder")
	}

	// Survey must exist in this org.
	var survey surveyModel.SurveyModel
	if err := ctrl.DB.First(&survey,
		"survey_id = ? AND survey_org_id = ?", req.CampaignSurveyID, orgID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Survey not found")
	}

	campaign := model.CampaignModel{
		CampaignOrgID:      orgID,
		CampaignSurveyID:   survey.SurveyID,
		CampaignName:       strings.TrimSpace(req.CampaignName),
		CampaignChannel:    model.CampaignChannel(req.CampaignChannel),
		CampaignSubject:    req.CampaignSubject,
		CampaignTemplate:   req.CampaignTemplate,
		CampaignContactIDs: dto.ContactIDsJSON(req.ContactIDs),
	}
	if req.CampaignGroupID != nil {
		gid, _ := uuid.Parse(*req.CampaignGroupID)
		campaign.CampaignGroupID = &gid
	}

	if err := ctrl.DB.Create(&campaign).Error; err != nil {
		log.Println("[ERROR] create campaign:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create campaign")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Campaign created", dto.ToCampaignDTO(campaign))
}

// GET /api/a/campaigns
func (ctrl *CampaignController) List(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.CampaignModel{}).Where("campaign_org_id = ?", orgID)
	if surveyID := c.Query("survey_id"); surveyID != "" {
		q = q.Where("campaign_survey_id = ?", surveyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count campaigns")
	}

	var campaigns []model.CampaignModel
	if err := q.Order("campaign_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&campaigns).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list campaigns")
	}

	out := make([]dto.CampaignDTO, 0, len(campaigns))
	for _, m := range campaigns {
		out = append(out, dto.ToCampaignDTO(m))
	}
	return helper.SuccessWithMeta(c, "OK", out, helper.BuildMeta(total, p))
}

// GET /api/a/campaigns/:id - campaign with delivery status counts.
func (ctrl *CampaignController) GetByID(c *fiber.Ctx) error {
	campaign, err := ctrl.findOrgCampaign(c)
	if err != nil {
		return err
	}

	var stats dto.CampaignStatsDTO
	type countRow struct {
		Status string
		N      int64
	}
	var counts []countRow
	if err := ctrl.DB.Model(&model.DeliveryModel{}).
		Select("delivery_status AS status, COUNT(*) AS n").
		Where("delivery_campaign_id = ?", campaign.CampaignID).
		Group("delivery_status").
		Scan(&counts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load delivery stats")
	}
	for _, row := range counts {
		stats.Total += row.N
		switch model.DeliveryStatus(row.Status) {
		case model.DeliveryStatusPending:
			stats.Pending = row.N
		case model.DeliveryStatusSent:
			stats.Sent = row.N
		case model.DeliveryStatusFailed:
			stats.Failed = row.N
		case model.DeliveryStatusResponded:
			stats.Responded = row.N
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"campaign": dto.ToCampaignDTO(*campaign),
		"stats":    stats,
	})
}

// GET /api/a/campaigns/:id/deliveries
func (ctrl *CampaignController) ListDeliveries(c *fiber.Ctx) error {
	campaign, err := ctrl.findOrgCampaign(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.DeliveryModel{}).
		Where("delivery_campaign_id = ?", campaign.CampaignID)
	if status := c.Query("status"); status != "" {
		q = q.Where("delivery_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count deliveries")
	}

	var deliveries []model.DeliveryModel
	if err := q.Order("delivery_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&deliveries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list deliveries")
	}

	out := make([]dto.DeliveryDTO, 0, len(deliveries))
	for _, m := range deliveries {
		out = append(out, dto.ToDeliveryDTO(m))
	}
	return helper.SuccessWithMeta(c, "OK", out, helper.BuildMeta(total, p))
}

// POST /api/a/campaigns/:id/launch - fan out and send in the background.
func (ctrl *CampaignController) Launch(c *fiber.Ctx) error {
	campaign, err := ctrl.findOrgCampaign(c)
	if err != nil {
		return err
	}
	if campaign.CampaignStatus != model.CampaignStatusDraft {
		return fiber.NewError(fiber.StatusConflict, "Campaign was already launched")
	}

	var survey surveyModel.SurveyModel
	if err := ctrl.DB.First(&survey, "survey_id = ?", campaign.CampaignSurveyID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Survey not found")
	}
	if survey.SurveyStatus != surveyModel.SurveyStatusActive {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Survey must be active before launching")
	}
	if campaign.CampaignChannel != model.CampaignChannelWeb {
		engine := ctrl.Dispatcher.EngineFor(campaign.CampaignChannel)
		if engine == nil || !engine.Enabled() {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"The "+string(campaign.CampaignChannel)+" channel is not configured")
		}
	}

	deliveries, err := ctrl.Dispatcher.Launch(campaign)
	if err != nil {
		log.Println("[ERROR] campaign launch:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to launch campaign")
	}
	if len(deliveries) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "No addressable contacts for this channel")
	}

	now := time.Now()
	if err := ctrl.DB.Model(campaign).Updates(map[string]interface{}{
		"campaign_status":      model.CampaignStatusSending,
		"campaign_launched_at": now,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to launch campaign")
	}
	campaign.CampaignStatus = model.CampaignStatusSending
	campaign.CampaignLaunchedAt = &now

	go ctrl.Dispatcher.Run(campaign, deliveries)

	return helper.Success(c, "Campaign launched", fiber.Map{
		"campaign":   dto.ToCampaignDTO(*campaign),
		"deliveries": len(deliveries),
	})
}

// DELETE /api/a/campaigns/:id - drafts only.
func (ctrl *CampaignController) Delete(c *fiber.Ctx) error {
	campaign, err := ctrl.findOrgCampaign(c)
	if err != nil {
		return err
	}
	if campaign.CampaignStatus != model.CampaignStatusDraft {
		return fiber.NewError(fiber.StatusConflict, "Only draft campaigns can be deleted")
	}
	if err := ctrl.DB.Delete(campaign).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete campaign")
	}
	return helper.Success(c, "Campaign deleted", nil)
}

func (ctrl *CampaignController) findOrgCampaign(c *fiber.Ctx) (*model.CampaignModel, error) {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var campaign model.CampaignModel
	if err := ctrl.DB.First(&campaign,
		"campaign_id = ? AND campaign_org_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Campaign not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load campaign")
	}
	return &campaign, nil
}
