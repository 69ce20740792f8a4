package authController

import (
	"errors"

	"gradebook/middleware"
	"gradebook/service"
	authValidator "gradebook/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// Login authenticates the user and opens a session
func Login(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		ip := c.IP()
		if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
			ip = forwarded
		}

		result, err := svc.Login(reqData.Username, reqData.Password, ip, c.Get("User-Agent"))
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", result)
	}
}

// Logout revokes the caller's session. Always succeeds.
func Logout(svc *service.Enrollment) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("token").(string)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		svc.Logout(token)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
	}
}
