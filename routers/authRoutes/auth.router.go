package authRoutes

import (
	authControllers "gradebook/controllers/auth"
	"gradebook/middleware"
	"gradebook/service"
	authValidators "gradebook/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, svc *service.Enrollment) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login(svc))
	authGroup.Post("/logout", middleware.RequireToken, authControllers.Logout(svc))
}
