package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/controllers"
	"github.com/clasesya/clasesya-api/controllers/student"
	"github.com/clasesya/clasesya-api/controllers/teacher"
	"github.com/clasesya/clasesya-api/middleware"
	"github.com/clasesya/clasesya-api/models"
)

// SetupSessionRoutes configures booking and session lifecycle routes
func SetupSessionRoutes(app *fiber.App) {
	sessions := app.Group("/sessions", middleware.Protected())

	sessions.Post("/", middleware.RequireRole(models.UserTypeStudent), student.BookSession)
	sessions.Get("/", controllers.ListSessions)
	sessions.Get("/:id", controllers.GetSession)
	sessions.Get("/:id/room", controllers.GetSessionRoom)
	sessions.Patch("/:id/status", middleware.RequireRole(models.UserTypeTeacher), teacher.UpdateSessionStatus)
}
