package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rayk_backend/internals/constants"
	analyticsController "rayk_backend/internals/features/analytics/controller"
	campaignController "rayk_backend/internals/features/campaigns/controller"
	campaignService "rayk_backend/internals/features/campaigns/service"
	contactController "rayk_backend/internals/features/contacts/controller"
	feedbackController "rayk_backend/internals/features/feedback/controller"
	orgController "rayk_backend/internals/features/organizations/controller"
	responseController "rayk_backend/internals/features/responses/controller"
	surveyController "rayk_backend/internals/features/surveys/controller"
	authMiddleware "rayk_backend/internals/middlewares/auth"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

func registerAdminRoutes(
	app *fiber.App,
	db *gorm.DB,
	dispatcher *campaignService.Dispatcher,
	feedback *feedbackController.FeedbackController,
) {
	base := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		featuresMiddleware.UseOrgScope(),
	)

	// Management surface, admin and owner only.
	manage := base.Group("",
		authMiddleware.OnlyRolesSlice("Admin access required", constants.AdminAndAbove))

	orgs := orgController.NewOrganizationController(db)
	manage.Get("/organization", orgs.GetActive)
	manage.Put("/organization", orgs.UpdateActive)
	manage.Get("/organization/members", orgs.ListMembers)
	manage.Post("/organization/members", orgs.AddMember)
	manage.Delete("/organization/members/:id", orgs.RemoveMember)

	surveys := surveyController.NewSurveyController(db)
	manage.Post("/surveys", surveys.Create)
	manage.Put("/surveys/:id", surveys.Update)
	manage.Post("/surveys/:id/activate", surveys.Activate)
	manage.Post("/surveys/:id/close", surveys.Close)
	manage.Post("/surveys/:id/duplicate", surveys.Duplicate)
	manage.Delete("/surveys/:id", surveys.Delete)

	questions := surveyController.NewQuestionController(db)
	manage.Post("/surveys/:survey_id/questions", questions.Create)
	manage.Put("/surveys/:survey_id/questions/:id", questions.Update)
	manage.Delete("/surveys/:survey_id/questions/:id", questions.Delete)
	manage.Post("/surveys/:survey_id/questions/reorder", questions.Reorder)

	contacts := contactController.NewContactController(db)
	manage.Post("/contacts", contacts.Create)
	manage.Get("/contacts", contacts.List)
	manage.Put("/contacts/:id", contacts.Update)
	manage.Delete("/contacts/:id", contacts.Delete)
	manage.Post("/contacts/import", contacts.ImportCSV)
	manage.Get("/contacts/export", contacts.ExportCSV)

	groups := contactController.NewContactGroupController(db)
	manage.Post("/contact-groups", groups.Create)
	manage.Get("/contact-groups", groups.List)
	manage.Post("/contact-groups/:id/members", groups.AddMembers)
	manage.Delete("/contact-groups/:id/members", groups.RemoveMembers)
	manage.Delete("/contact-groups/:id", groups.Delete)

	campaigns := campaignController.NewCampaignController(db, dispatcher)
	manage.Post("/campaigns", campaigns.Create)
	manage.Get("/campaigns", campaigns.List)
	manage.Get("/campaigns/:id", campaigns.GetByID)
	manage.Get("/campaigns/:id/deliveries", campaigns.ListDeliveries)
	manage.Post("/campaigns/:id/launch", campaigns.Launch)
	manage.Delete("/campaigns/:id", campaigns.Delete)

	manage.Delete("/feedback/:id", feedback.Delete)

	// Read surface, open to analysts as well.
	read := base.Group("",
		authMiddleware.OnlyRolesSlice("Analyst access required", constants.AnalystAndAbove))

	read.Get("/surveys", surveys.List)
	read.Get("/surveys/:id", surveys.GetByID)

	responses := responseController.NewResponseAdminController(db)
	read.Get("/responses", responses.List)
	read.Get("/responses/:id", responses.GetByID)
	manage.Delete("/responses/:id", responses.Delete)

	read.Get("/feedback", feedback.List)

	analytics := analyticsController.NewAnalyticsController(db)
	read.Get("/surveys/:id/dashboard", analytics.GetDashboard)
	read.Get("/surveys/:id/export", analytics.ExportCSV)
}
