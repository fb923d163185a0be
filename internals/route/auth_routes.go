package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "rayk_backend/internals/features/users/auth/controller"
	"rayk_backend/internals/middlewares"
	authMiddleware "rayk_backend/internals/middlewares/auth"
)

func registerAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)

	// Switching org and logout need a valid access token.
	auth.Post("/switch-org", authMiddleware.AuthMiddleware(db), ctrl.SwitchOrg)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
