package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	campaignModel "rayk_backend/internals/features/campaigns/model"
	"rayk_backend/internals/features/responses/dto"
	"rayk_backend/internals/features/responses/model"
	responseService "rayk_backend/internals/features/responses/service"
	surveyDto "rayk_backend/internals/features/surveys/dto"
	surveyModel "rayk_backend/internals/features/surveys/model"
	analysisService "rayk_backend/internals/features/textanalysis/service"
	helper "rayk_backend/internals/helpers"
)

var validateResponse = validator.New()

// PublicResponseController serves the unauthenticated survey surface:
// fetching a survey by slug or delivery token and accepting submissions.
type PublicResponseController struct {
	DB       *gorm.DB
	Analyzer *analysisService.Analyzer
}

func NewPublicResponseController(db *gorm.DB, analyzer *analysisService.Analyzer) *PublicResponseController {
	return &PublicResponseController{DB: db, Analyzer: analyzer}
}

// GET /api/public/surveys/:slug
func (ctrl *PublicResponseController) GetBySlug(c *fiber.Ctx) error {
	survey, err := ctrl.loadSurveyBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", surveyDto.ToSurveyDTO(*survey, true))
}

// GET /api/public/t/:token
func (ctrl *PublicResponseController) GetByToken(c *fiber.Ctx) error {
	delivery, err := ctrl.loadDelivery(c.Params("token"))
	if err != nil {
		return err
	}
	survey, err := ctrl.loadDeliverySurvey(delivery)
	if err != nil {
		return err
	}
	return helper.Success(c, "OK", surveyDto.ToSurveyDTO(*survey, true))
}

// POST /api/public/surveys/:slug/responses - anonymous web submission.
func (ctrl *PublicResponseController) SubmitBySlug(c *fiber.Ctx) error {
	survey, err := ctrl.loadSurveyBySlug(c.Params("slug"))
	if err != nil {
		return err
	}

	response := model.SurveyResponseModel{
		SurveyResponseOrgID:    survey.SurveyOrgID,
		SurveyResponseSurveyID: survey.SurveyID,
		SurveyResponseChannel:  "web",
	}
	return ctrl.submit(c, survey, &response, nil)
}

// POST /api/public/t/:token/responses - delivery-token submission.
// A token can only be used once; the second attempt gets a 409.
func (ctrl *PublicResponseController) SubmitByToken(c *fiber.Ctx) error {
	delivery, err := ctrl.loadDelivery(c.Params("token"))
	if err != nil {
		return err
	}
	if delivery.DeliveryStatus == campaignModel.DeliveryStatusResponded {
		return fiber.NewError(fiber.StatusConflict, "This survey link was already used")
	}

	survey, err := ctrl.loadDeliverySurvey(delivery)
	if err != nil {
		return err
	}

	deliveryID := delivery.DeliveryID
	contactID := delivery.DeliveryContactID
	response := model.SurveyResponseModel{
		SurveyResponseOrgID:      survey.SurveyOrgID,
		SurveyResponseSurveyID:   survey.SurveyID,
		SurveyResponseDeliveryID: &deliveryID,
		SurveyResponseContactID:  &contactID,
		SurveyResponseChannel:    string(delivery.DeliveryChannel),
	}
	return ctrl.submit(c, survey, &response, delivery)
}

func (ctrl *PublicResponseController) submit(
	c *fiber.Ctx,
	survey *surveyModel.SurveyModel,
	response *model.SurveyResponseModel,
	delivery *campaignModel.DeliveryModel,
) error {
	var req dto.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResponse.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	submitted := make([]responseService.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		submitted = append(submitted, responseService.SubmittedAnswer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
		})
	}

	answers, err := responseService.BuildAnswers(c.UserContext(), ctrl.Analyzer, survey.Questions, submitted)
	if err != nil {
		var answerErr *responseService.AnswerError
		if errors.As(err, &answerErr) {
			return fiber.NewError(fiber.StatusBadRequest, answerErr.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process answers")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].QuestionResponseResponseID = response.SurveyResponseID
		}
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}
		if delivery != nil {
			now := time.Now()
			return tx.Model(delivery).Updates(map[string]interface{}{
				"delivery_status":       campaignModel.DeliveryStatusResponded,
				"delivery_responded_at": now,
			}).Error
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "This survey link was already used")
		}
		log.Println("[ERROR] submit response:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save response")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "شكراً لمشاركتك", dto.ToResponseDTO(*response, false))
}

func (ctrl *PublicResponseController) loadSurveyBySlug(slug string) (*surveyModel.SurveyModel, error) {
	var survey surveyModel.SurveyModel
	err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_position ASC")
		}).
		First(&survey, "survey_slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load survey")
	}
	return ensureOpen(&survey)
}

func (ctrl *PublicResponseController) loadDeliverySurvey(delivery *campaignModel.DeliveryModel) (*surveyModel.SurveyModel, error) {
	var campaign campaignModel.CampaignModel
	if err := ctrl.DB.First(&campaign, "campaign_id = ?", delivery.DeliveryCampaignID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Survey link not found")
	}

	var survey surveyModel.SurveyModel
	err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_position ASC")
		}).
		First(&survey, "survey_id = ?", campaign.CampaignSurveyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load survey")
	}
	return ensureOpen(&survey)
}

func ensureOpen(survey *surveyModel.SurveyModel) (*surveyModel.SurveyModel, error) {
	switch survey.SurveyStatus {
	case surveyModel.SurveyStatusActive:
		return survey, nil
	case surveyModel.SurveyStatusClosed:
		return nil, fiber.NewError(fiber.StatusGone, "This survey is closed")
	default:
		return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
	}
}

func (ctrl *PublicResponseController) loadDelivery(token string) (*campaignModel.DeliveryModel, error) {
	var delivery campaignModel.DeliveryModel
	if err := ctrl.DB.First(&delivery, "delivery_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey link not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load survey link")
	}
	return &delivery, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
