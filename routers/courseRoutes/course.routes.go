package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and student-facing routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing (no auth required; detail widens for owners/admins)
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/reviews", validators.CourseID(), controllers.GetCourseReviews)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Post("/:id/enroll/payment", middleware.JWTMiddleware, validators.CourseID(), validators.EnrollWithPayment(), controllers.EnrollWithPayment)

	// Progress tracking
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.LessonCompletion(), controllers.MarkLessonCompletion)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetMyProgress)

	// Reviews
	courseGroup.Post("/:id/review", middleware.JWTMiddleware, validators.CourseID(), validators.Review(), controllers.SubmitReview)

	// Student account views
	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/enrollments", controllers.GetMyEnrollments)
	userGroup.Get("/transactions", controllers.GetMyTransactions)
}
