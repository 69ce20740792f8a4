package courseValidator

import (
	"math"
	"strconv"

	"gradebook/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter and stores it in Locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// GradeRequest carries the validated grade payload. The grade arrives
// as a JSON number; fractional values are rejected here with the same
// error kind the store uses for out-of-range integers.
type GradeRequest struct {
	EnrollmentID uint
	Grade        int
}

// RecordGrade validates the :id route parameter and the grade body
func RecordGrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}

		reqData := new(struct {
			Grade *float64 `json:"grade"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Grade == nil {
			errors["grade"] = "Grade is required!"
		} else if *reqData.Grade != math.Trunc(*reqData.Grade) {
			errors["grade"] = "Grade must be an integer between 0 and 100!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGrade", &GradeRequest{
			EnrollmentID: uint(id),
			Grade:        int(*reqData.Grade),
		})
		return c.Next()
	}
}
