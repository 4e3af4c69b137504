package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/controllers/student"
	"github.com/clasesya/clasesya-api/controllers/teacher"
	"github.com/clasesya/clasesya-api/middleware"
	"github.com/clasesya/clasesya-api/models"
)

// SetupTeacherRoutes configures teacher discovery and slot management routes
func SetupTeacherRoutes(app *fiber.App) {
	teachers := app.Group("/teachers", middleware.Protected())

	// Slot management for the logged-in teacher
	me := teachers.Group("/me", middleware.RequireRole(models.UserTypeTeacher))
	me.Get("/slots", teacher.GetMySlots)
	me.Post("/slots", teacher.CreateSlot)
	me.Delete("/slots/:id", teacher.DeactivateSlot)
	me.Get("/sessions/upcoming", teacher.GetUpcomingSessions)

	// Discovery, for students
	teachers.Get("/", middleware.RequireRole(models.UserTypeStudent), student.SearchTeachers)
	teachers.Get("/:id", student.GetTeacherDetails)
	teachers.Get("/:id/slots", student.GetTeacherSlots)
}
