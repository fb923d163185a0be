package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rayk_backend/internals/configs"
	campaignModel "rayk_backend/internals/features/campaigns/model"
	contactModel "rayk_backend/internals/features/contacts/model"
	feedbackController "rayk_backend/internals/features/feedback/controller"
	feedbackModel "rayk_backend/internals/features/feedback/model"
	webhookService "rayk_backend/internals/features/webhooks/service"
	helper "rayk_backend/internals/helpers"
)

// WhatsAppWebhookController receives WhatsApp Business callbacks: delivery
// status updates for our outbound sends and inbound text replies.
type WhatsAppWebhookController struct {
	DB       *gorm.DB
	Feedback *feedbackController.FeedbackController
}

func NewWhatsAppWebhookController(db *gorm.DB, feedback *feedbackController.FeedbackController) *WhatsAppWebhookController {
	return &WhatsAppWebhookController{DB: db, Feedback: feedback}
}

// GET /api/public/webhooks/whatsapp - Meta subscription handshake.
func (ctrl *WhatsAppWebhookController) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == configs.WhatsAppVerifyTkn {
		return c.SendString(challenge)
	}
	return fiber.NewError(fiber.StatusForbidden, "Verification failed")
}

type whatsAppPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Statuses []struct {
					ID     string `json:"id"`
					Status string `json:"status"`
				} `json:"statuses"`
				Messages []struct {
					ID   string `json:"id"`
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// POST /api/public/webhooks/whatsapp
func (ctrl *WhatsAppWebhookController) Receive(c *fiber.Ctx) error {
	var payload whatsAppPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	ctx := c.UserContext()
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, st := range change.Value.Statuses {
				if webhookService.AlreadySeen(ctx, "wa:"+st.ID+":"+st.Status) {
					continue
				}
				ctrl.applyStatus(st.ID, st.Status)
			}
			for _, msg := range change.Value.Messages {
				if webhookService.AlreadySeen(ctx, "wa:"+msg.ID) {
					continue
				}
				ctrl.storeInbound(msg.From, msg.Text.Body)
			}
		}
	}

	// Meta retries on non-2xx; processing errors are logged, not returned.
	return helper.Success(c, "OK", nil)
}

// applyStatus maps vendor status onto the delivery row. A responded
// delivery is never downgraded.
func (ctrl *WhatsAppWebhookController) applyStatus(vendorMessageID, status string) {
	if vendorMessageID == "" {
		return
	}
	var newStatus campaignModel.DeliveryStatus
	switch status {
	case "failed":
		newStatus = campaignModel.DeliveryStatusFailed
	case "sent", "delivered", "read":
		newStatus = campaignModel.DeliveryStatusSent
	default:
		return
	}
	err := ctrl.DB.Model(&campaignModel.DeliveryModel{}).
		Where("delivery_vendor_message_id = ? AND delivery_status <> ?",
			vendorMessageID, campaignModel.DeliveryStatusResponded).
		Updates(map[string]interface{}{
			"delivery_status":     newStatus,
			"delivery_updated_at": time.Now(),
		}).Error
	if err != nil {
		log.Printf("[ERROR] whatsapp status update: %v", err)
	}
}

// storeInbound records a reply as feedback for the org that owns the
// contact. Replies from unknown numbers are dropped.
func (ctrl *WhatsAppWebhookController) storeInbound(from, text string) {
	if text == "" {
		return
	}
	phone := helper.NormalizePhone(from)

	var contact contactModel.ContactModel
	if err := ctrl.DB.First(&contact, "contact_phone = ?", phone).Error; err != nil {
		log.Printf("[INFO] whatsapp inbound from unknown number %s dropped", helper.DisplayPhone(phone))
		return
	}
	if err := ctrl.Feedback.CreateInbound(contact.ContactOrgID,
		feedbackModel.FeedbackChannelWhatsApp, phone, text); err != nil {
		log.Printf("[ERROR] whatsapp inbound feedback: %v", err)
	}
}
