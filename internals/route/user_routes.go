package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgController "rayk_backend/internals/features/organizations/controller"
	userController "rayk_backend/internals/features/users/user/controller"
	authMiddleware "rayk_backend/internals/middlewares/auth"
)

func registerUserRoutes(app *fiber.App, db *gorm.DB) {
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	users := userController.NewUserController(db)
	user.Get("/me", users.GetMe)
	user.Put("/me", users.UpdateMe)

	orgs := orgController.NewOrganizationController(db)
	user.Post("/organizations", orgs.Create)
	user.Get("/organizations", orgs.ListMine)
}
