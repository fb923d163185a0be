package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campaignService "rayk_backend/internals/features/campaigns/service"
	feedbackController "rayk_backend/internals/features/feedback/controller"
	analysisService "rayk_backend/internals/features/textanalysis/service"
)

// SetupRoutes wires every endpoint group:
//
//	/api/public - no auth (survey pages, submissions, webhooks, feedback widget)
//	/api/u      - authenticated user surface (profile, orgs, token refresh)
//	/api/a      - org-scoped admin surface, role-gated per route set
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	analyzer := analysisService.NewAnalyzer()
	dispatcher := campaignService.NewDispatcher(db)
	feedback := feedbackController.NewFeedbackController(db, analyzer)

	registerAuthRoutes(app, db)
	registerPublicRoutes(app, db, analyzer, feedback)
	registerUserRoutes(app, db)
	registerAdminRoutes(app, db, dispatcher, feedback)
}
