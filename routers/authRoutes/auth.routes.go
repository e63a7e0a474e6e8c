package authRoutes

import (
	controllers "coursehub/controllers/auth"
	"coursehub/middleware"
	validators "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, controllers.Me)
}
