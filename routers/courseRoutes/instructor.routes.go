package courseRoutes

import (
	controllers "coursehub/controllers/course"
	"coursehub/middleware"
	"coursehub/models"
	validators "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up course authoring routes for instructors
func SetupInstructorRoutes(app *fiber.App) {
	group := app.Group("/instructor/course",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleInstructor, models.RoleAdmin))

	group.Get("/list", controllers.GetMyCourses)
	group.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	group.Patch("/:id", validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	group.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)

	// Moderation requests
	group.Post("/:id/submit", validators.CourseID(), controllers.SubmitForReview)
	group.Post("/:id/unpublish", validators.CourseID(), controllers.RequestUnpublish)

	// Curriculum authoring
	group.Post("/:id/section", validators.CourseID(), validators.AddSection(), controllers.AddSection)
	group.Delete("/:id/section/:sectionId", validators.CourseID(), validators.SectionID(), controllers.DeleteSection)
	group.Post("/:id/section/:sectionId/lesson", validators.CourseID(), validators.SectionID(), validators.Lesson(), controllers.AddLesson)
	group.Patch("/:id/lesson/:lessonId", validators.CourseID(), validators.LessonID(), validators.Lesson(), controllers.UpdateLesson)
	group.Delete("/:id/lesson/:lessonId", validators.CourseID(), validators.LessonID(), controllers.DeleteLesson)
}
