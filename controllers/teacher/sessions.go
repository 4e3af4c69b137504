package teacher

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/redis"
	"github.com/clasesya/clasesya-api/utils"
)

type updateStatusInput struct {
	Status models.SessionStatus `json:"status"`
}

// UpdateSessionStatus moves a session out of the scheduled state. Only the
// owning teacher may transition, and completed/cancelled are terminal.
// Cancelling frees the bound slot for rebooking; completing does not, because
// the window has been consumed.
func UpdateSessionStatus(c *fiber.Ctx) error {
	profile := currentTeacherProfile(c)
	if profile == nil {
		return nil
	}

	id := c.Params("id")
	var session models.Session
	if err := db.DB.Where("teacher_id = ?", profile.ID).First(&session, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	input := new(updateStatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := session.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// A cancelled session releases its slot back into the listing.
	if input.Status == models.StatusCancelled {
		redis.InvalidateAvailability(profile.ID)
	}

	return c.JSON(session)
}

// GetUpcomingSessions returns the teacher's scheduled sessions, soonest first.
func GetUpcomingSessions(c *fiber.Ctx) error {
	profile := currentTeacherProfile(c)
	if profile == nil {
		return nil
	}

	// Get optional query parameters
	limit := 10 // Default limit
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 1, 0)

	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1)
		startDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 23, 59, 59, 0, now.Location())
	case "week":
		endDate = now.AddDate(0, 0, 7)
	case "month":
		endDate = now.AddDate(0, 1, 0)
	}

	var sessions []models.Session
	if err := db.DB.
		Preload("Student.User").
		Where("teacher_id = ?", profile.ID).
		Where("status = ?", models.StatusScheduled).
		Where("start_time >= ?", startDate).
		Where("start_time <= ?", endDate).
		Order("start_time asc").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
		"filter":   dateFilter,
	})
}
