package courseController

import (
	"gradebook/middleware"
	"gradebook/service"
	courseValidator "gradebook/validators/course"

	"github.com/gofiber/fiber/v2"
)

// RecordGrade sets a grade on an enrollment for the calling teacher
func RecordGrade(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("token").(string)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		reqData, ok := c.Locals("validatedGrade").(*courseValidator.GradeRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		if err := svc.RecordGrade(token, reqData.EnrollmentID, reqData.Grade); err != nil {
			return failWith(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Grade recorded successfully!", nil)
	}
}
