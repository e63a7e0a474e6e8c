package courseRoutes

import (
	adminControllers "coursehub/controllers/admin"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the moderation and operations console routes
func SetupAdminRoutes(app *fiber.App) {
	// Public read-only feed of publish events
	app.Get("/activity/public", adminControllers.GetPublicActivity)

	adminGroup := app.Group("/admin",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin))

	// Course moderation
	adminGroup.Get("/course/list", validators.CourseList(), adminControllers.GetAllCourses)
	adminGroup.Get("/course/queue", adminControllers.GetModerationQueue)
	adminGroup.Patch("/course/:id/status", validators.CourseID(), validators.CourseStatus(), adminControllers.SetCourseStatus)
	adminGroup.Patch("/course/:id/featured", validators.CourseID(), adminControllers.ToggleFeatured)
	adminGroup.Delete("/course/:id", validators.CourseID(), adminControllers.DeleteCourse)

	// Enrollment operations
	adminGroup.Get("/enrollment/list", adminControllers.GetEnrollments)
	adminGroup.Patch("/enrollment/:id/resolve", validators.EnrollmentID(), validators.ResolveEnrollment(), adminControllers.ResolveEnrollment)
	adminGroup.Post("/enrollment/manual", validators.ManualEnroll(), adminControllers.ManualEnroll)
	adminGroup.Delete("/enrollment/:id", validators.EnrollmentID(), adminControllers.Unenroll)

	// Console
	adminGroup.Get("/dashboard", adminControllers.GetDashboardStats)
	adminGroup.Get("/activity", validators.ActivityList(), adminControllers.GetActivityFeed)
	adminGroup.Post("/reconcile", adminControllers.RunReconciliation)
}
