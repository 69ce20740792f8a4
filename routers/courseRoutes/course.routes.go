package courseRoutes

import (
	controllers "gradebook/controllers/course"
	"gradebook/middleware"
	"gradebook/service"
	validators "gradebook/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course and grading routes
func SetupCourseRoutes(app *fiber.App, svc *service.Enrollment) {
	courseGroup := app.Group("/course")

	// Catalog browsing and the caller's own view
	courseGroup.Get("/list", middleware.RequireToken, controllers.GetAllCourses(svc))
	courseGroup.Get("/mine", middleware.RequireToken, controllers.GetMyCourses(svc))

	// Enrollment lifecycle (students)
	courseGroup.Post("/:id/enroll", middleware.RequireToken, validators.CourseID(), controllers.EnrollInCourse(svc))
	courseGroup.Post("/:id/drop", middleware.RequireToken, validators.CourseID(), controllers.DropCourse(svc))

	// Grading (teachers)
	enrollmentGroup := app.Group("/enrollment")
	enrollmentGroup.Post("/:id/grade", middleware.RequireToken, validators.RecordGrade(), controllers.RecordGrade(svc))
}
