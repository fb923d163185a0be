package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackController "rayk_backend/internals/features/feedback/controller"
	responseController "rayk_backend/internals/features/responses/controller"
	analysisService "rayk_backend/internals/features/textanalysis/service"
	webhookController "rayk_backend/internals/features/webhooks/controller"
	"rayk_backend/internals/middlewares"
)

func registerPublicRoutes(
	app *fiber.App,
	db *gorm.DB,
	analyzer *analysisService.Analyzer,
	feedback *feedbackController.FeedbackController,
) {
	public := app.Group("/api/public")

	responses := responseController.NewPublicResponseController(db, analyzer)
	submitLimiter := middlewares.PublicSubmitRateLimiter()

	// Survey pages and submissions, by public slug or delivery token.
	public.Get("/surveys/:slug", responses.GetBySlug)
	public.Post("/surveys/:slug/responses", submitLimiter, responses.SubmitBySlug)
	public.Get("/t/:token", responses.GetByToken)
	public.Post("/t/:token/responses", submitLimiter, responses.SubmitByToken)

	// Standalone feedback widget.
	public.Post("/orgs/:org_slug/feedback", submitLimiter, feedback.CreatePublic)

	// Vendor webhooks. Providers retry on non-2xx; no auth beyond the
	// WhatsApp verify token handshake.
	whatsapp := webhookController.NewWhatsAppWebhookController(db, feedback)
	twilio := webhookController.NewTwilioWebhookController(db, feedback)
	public.Get("/webhooks/whatsapp", whatsapp.Verify)
	public.Post("/webhooks/whatsapp", whatsapp.Receive)
	public.Post("/webhooks/twilio", twilio.Receive)
}
