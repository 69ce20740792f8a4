package courseController

import (
	"errors"

	"gradebook/middleware"
	"gradebook/service"
	"gradebook/store"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the service/store error taxonomy onto HTTP
// statuses. Auth failures always map before business failures because
// the service resolves the session first.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "Invalid or expired session!"
	case errors.Is(err, service.ErrWrongRole):
		return fiber.StatusForbidden, "Operation not permitted for your role!"
	case errors.Is(err, store.ErrNotAuthorized):
		return fiber.StatusForbidden, "You do not teach this course!"
	case errors.Is(err, store.ErrCourseNotFound):
		return fiber.StatusNotFound, "Course not found!"
	case errors.Is(err, store.ErrEnrollmentNotFound):
		return fiber.StatusNotFound, "Enrollment not found!"
	case errors.Is(err, store.ErrAlreadyEnrolled):
		return fiber.StatusConflict, "Already enrolled in this course!"
	case errors.Is(err, store.ErrCourseFull):
		return fiber.StatusConflict, "Course is full!"
	case errors.Is(err, store.ErrNotEnrolled):
		return fiber.StatusConflict, "Not enrolled in this course!"
	case errors.Is(err, store.ErrInvalidGrade):
		return fiber.StatusUnprocessableEntity, "Grade must be an integer between 0 and 100!"
	default:
		return fiber.StatusInternalServerError, "Failed to process your request!"
	}
}

func failWith(c *fiber.Ctx, err error) error {
	status, message := statusForError(err)
	return middleware.JsonResponse(c, status, false, message, nil)
}

// GetAllCourses lists the catalog with live enrollment counts
func GetAllCourses(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("token").(string)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		summaries, err := svc.ListCourses(token)
		if err != nil {
			return failWith(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": summaries,
		})
	}
}

// GetMyCourses returns the caller's own view: enrollments for a
// student, taught courses with rosters for a teacher
func GetMyCourses(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("token").(string)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		result, err := svc.ListMyCourses(token)
		if err != nil {
			return failWith(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "My courses fetched successfully!", result)
	}
}
