package courseController

import (
	"gradebook/middleware"
	"gradebook/service"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the calling student into the course
func EnrollInCourse(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("token").(string)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID, ok := c.Locals("courseID").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		enrollmentID, err := svc.EnrollCourse(token, courseID)
		if err != nil {
			return failWith(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", fiber.Map{
			"enrollment_id": enrollmentID,
		})
	}
}

// DropCourse drops the calling student's active enrollment
func DropCourse(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("token").(string)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		courseID, ok := c.Locals("courseID").(uint)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		if err := svc.DropCourse(token, courseID); err != nil {
			return failWith(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dropped course successfully!", nil)
	}
}
