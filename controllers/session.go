package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/utils"
)

// ListSessions returns the sessions the logged-in account takes part in,
// dispatching on role for the calendar to query.
func ListSessions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	query := db.DB.Preload("Teacher.User").Preload("Student.User").Preload("Slot")

	switch models.UserType(role) {
	case models.UserTypeStudent:
		query = query.Joins("JOIN student_profiles ON student_profiles.id = sessions.student_id").
			Where("student_profiles.user_id = ?", userID)
	case models.UserTypeTeacher:
		query = query.Joins("JOIN teacher_profiles ON teacher_profiles.id = sessions.teacher_id").
			Where("teacher_profiles.user_id = ?", userID)
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Unknown role",
		})
	}

	var sessions []models.Session
	if err := query.Order("start_time asc").Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch sessions",
			Error:   err.Error(),
		})
	}

	for i := range sessions {
		sessions[i].Teacher.User.Password = ""
		sessions[i].Student.User.Password = ""
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// GetSession returns one session, visible only to its participants. Anyone
// else gets a 404, not a 403, so session IDs leak nothing.
func GetSession(c *fiber.Ctx) error {
	session := participantSession(c)
	if session == nil {
		return nil
	}

	session.Teacher.User.Password = ""
	session.Student.User.Password = ""

	return c.JSON(fiber.Map{
		"session":  session,
		"room_url": utils.RoomURL(session.RoomToken),
	})
}

// GetSessionRoom hands out the virtual room link. Cancelled sessions refuse
// room access; finished ones still resolve, since "has finished" is a derived
// predicate rather than a stored state.
func GetSessionRoom(c *fiber.Ctx) error {
	session := participantSession(c)
	if session == nil {
		return nil
	}

	if session.Status == models.StatusCancelled {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Session was cancelled",
		})
	}

	return c.JSON(fiber.Map{
		"room_url": utils.RoomURL(session.RoomToken),
	})
}

// participantSession loads the session and enforces participant-only
// visibility. On failure it writes the error response and returns nil.
func participantSession(c *fiber.Ctx) *models.Session {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
		return nil
	}

	id := c.Params("id")
	var session models.Session
	if err := db.DB.Preload("Teacher.User").Preload("Student.User").Preload("Slot").
		First(&session, id).Error; err != nil {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
		return nil
	}

	if !session.IsParticipant(userID) {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
		return nil
	}

	return &session
}
