package categoryRoutes

import (
	controllers "coursehub/controllers/category"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up public category listing and admin management
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Get("/list", controllers.ListCategories)

	adminGroup := categoryGroup.Group("/",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin))

	adminGroup.Post("/", validators.CreateCategory(), controllers.CreateCategory)
	adminGroup.Patch("/:id", validators.CategoryID(), validators.RenameCategory(), controllers.RenameCategory)
	adminGroup.Delete("/:id", validators.CategoryID(), controllers.DeleteCategory)
}
