package controller

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rayk_backend/internals/features/feedback/dto"
	"rayk_backend/internals/features/feedback/model"
	orgModel "rayk_backend/internals/features/organizations/model"
	analysisService "rayk_backend/internals/features/textanalysis/service"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

var validateFeedback = validator.New()

type FeedbackController struct {
	DB       *gorm.DB
	Analyzer *analysisService.Analyzer
}

func NewFeedbackController(db *gorm.DB, analyzer *analysisService.Analyzer) *FeedbackController {
	return &FeedbackController{DB: db, Analyzer: analyzer}
}

// POST /api/public/orgs/:org_slug/feedback - the public web widget.
// Text analysis runs inline; its result is stored with the row.
func (ctrl *FeedbackController) CreatePublic(c *fiber.Ctx) error {
	var org orgModel.OrganizationModel
	if err := ctrl.DB.First(&org, "org_slug = ?", c.Params("org_slug")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Organization not found")
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fb := model.FeedbackModel{
		FeedbackOrgID:   org.OrgID,
		FeedbackRating:  req.FeedbackRating,
		FeedbackText:    strings.TrimSpace(req.FeedbackText),
		FeedbackChannel: model.FeedbackChannelWeb,
		FeedbackEmail:   req.FeedbackEmail,
	}
	if req.FeedbackPhone != nil && helper.ValidatePhone(*req.FeedbackPhone) {
		phone := helper.NormalizePhone(*req.FeedbackPhone)
		fb.FeedbackPhone = &phone
	}

	result := ctrl.Analyzer.Analyze(c.UserContext(), fb.FeedbackText)
	if raw, err := json.Marshal(result); err == nil {
		fb.FeedbackAnalysis = datatypes.JSON(raw)
	}

	if err := ctrl.DB.Create(&fb).Error; err != nil {
		log.Println("[ERROR] create feedback:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save feedback")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feedback received", dto.ToFeedbackDTO(fb))
}

// CreateInbound stores a webhook-sourced feedback row (SMS/WhatsApp reply)
// for the given org and runs analysis. Used by the webhook controllers.
func (ctrl *FeedbackController) CreateInbound(orgID uuid.UUID, channel model.FeedbackChannel, phone, text string) error {
	fb := model.FeedbackModel{
		FeedbackOrgID:   orgID,
		FeedbackText:    strings.TrimSpace(text),
		FeedbackChannel: channel,
	}
	if phone != "" {
		normalized := helper.NormalizePhone(phone)
		fb.FeedbackPhone = &normalized
	}
	result := ctrl.Analyzer.Analyze(context.Background(), fb.FeedbackText)
	if raw, err := json.Marshal(result); err == nil {
		fb.FeedbackAnalysis = datatypes.JSON(raw)
	}
	return ctrl.DB.Create(&fb).Error
}

// GET /api/a/feedback?sentiment=&channel=&min_rating=&max_rating=
func (ctrl *FeedbackController) List(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	q := ctrl.DB.Model(&model.FeedbackModel{}).Where("feedback_org_id = ?", orgID)

	if sentiment := c.Query("sentiment"); sentiment != "" {
		q = q.Where("feedback_analysis->>'sentiment' = ?", sentiment)
	}
	if channel := c.Query("channel"); channel != "" {
		if !model.FeedbackChannel(channel).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid channel filter")
		}
		q = q.Where("feedback_channel = ?", channel)
	}
	if v := c.Query("min_rating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q = q.Where("feedback_rating >= ?", n)
		}
	}
	if v := c.Query("max_rating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q = q.Where("feedback_rating <= ?", n)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var rows []model.FeedbackModel
	if err := q.Order("feedback_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list feedback")
	}

	out := make([]dto.FeedbackDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToFeedbackDTO(m))
	}
	return helper.SuccessWithMeta(c, "OK", out, helper.BuildMeta(total, p))
}

// DELETE /api/a/feedback/:id
func (ctrl *FeedbackController) Delete(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("feedback_id = ? AND feedback_org_id = ?",
		c.Params("id"), orgID).Delete(&model.FeedbackModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete feedback")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Feedback not found")
	}
	return helper.Success(c, "Feedback deleted", nil)
}
