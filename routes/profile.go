package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/controllers"
	"github.com/clasesya/clasesya-api/middleware"
	"github.com/clasesya/clasesya-api/models"
)

// SetupProfileRoutes configures profile management routes
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.Protected())

	profile.Get("/", controllers.GetUserProfile)
	profile.Patch("/", controllers.UpdateProfile)
	profile.Post("/avatar", middleware.RequireRole(models.UserTypeTeacher), controllers.UploadAvatar)
}
