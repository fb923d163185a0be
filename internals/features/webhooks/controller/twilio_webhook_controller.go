package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactModel "rayk_backend/internals/features/contacts/model"
	feedbackController "rayk_backend/internals/features/feedback/controller"
	feedbackModel "rayk_backend/internals/features/feedback/model"
	webhookService "rayk_backend/internals/features/webhooks/service"
	helper "rayk_backend/internals/helpers"
)

const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

// TwilioWebhookController receives inbound SMS. STOP requests (English or
// Arabic) opt the contact out; everything else is stored as feedback.
type TwilioWebhookController struct {
	DB       *gorm.DB
	Feedback *feedbackController.FeedbackController
}

func NewTwilioWebhookController(db *gorm.DB, feedback *feedbackController.FeedbackController) *TwilioWebhookController {
	return &TwilioWebhookController{DB: db, Feedback: feedback}
}

// IsOptOutMessage recognizes STOP keywords in English and Arabic.
func IsOptOutMessage(body string) bool {
	trimmed := strings.TrimSpace(body)
	switch strings.ToUpper(trimmed) {
	case "STOP", "STOPALL", "UNSUBSCRIBE", "CANCEL":
		return true
	}
	normalized := helper.NormalizeArabic(trimmed)
	return normalized == "ايقاف" || normalized == "الغاء"
}

// POST /api/public/webhooks/twilio - application/x-www-form-urlencoded.
func (ctrl *TwilioWebhookController) Receive(c *fiber.Ctx) error {
	sid := c.FormValue("MessageSid")
	from := c.FormValue("From")
	body := c.FormValue("Body")

	if from != "" && body != "" && !webhookService.AlreadySeen(c.UserContext(), "tw:"+sid) {
		phone := helper.NormalizePhone(from)
		if IsOptOutMessage(body) {
			ctrl.optOut(phone)
		} else {
			ctrl.storeInbound(phone, body)
		}
	}

	c.Set(fiber.HeaderContentType, "text/xml; charset=utf-8")
	return c.SendString(emptyTwiML)
}

func (ctrl *TwilioWebhookController) optOut(phone string) {
	result := ctrl.DB.Model(&contactModel.ContactModel{}).
		Where("contact_phone = ?", phone).
		Update("contact_opted_out", true)
	if result.Error != nil {
		log.Printf("[ERROR] sms opt-out: %v", result.Error)
		return
	}
	log.Printf("[INFO] sms opt-out for %s (%d contacts)", helper.DisplayPhone(phone), result.RowsAffected)
}

func (ctrl *TwilioWebhookController) storeInbound(phone, text string) {
	var contact contactModel.ContactModel
	if err := ctrl.DB.First(&contact, "contact_phone = ?", phone).Error; err != nil {
		log.Printf("[INFO] sms inbound from unknown number %s dropped", helper.DisplayPhone(phone))
		return
	}
	if err := ctrl.Feedback.CreateInbound(contact.ContactOrgID,
		feedbackModel.FeedbackChannelSMS, phone, text); err != nil {
		log.Printf("[ERROR] sms inbound feedback: %v", err)
	}
}
