package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/controllers"
	"github.com/clasesya/clasesya-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register/student", controllers.RegisterStudent)
	auth.Post("/register/teacher", controllers.RegisterTeacher)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
