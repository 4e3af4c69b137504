package teacher

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/redis"
	"github.com/clasesya/clasesya-api/utils"
)

type createSlotInput struct {
	StartTime time.Time `json:"start_time"`
}

// CreateSlot publishes a new one-hour bookable window for the logged-in
// teacher. (teacher, start_time) is unique, so publishing the same window
// twice fails with a conflict.
func CreateSlot(c *fiber.Ctx) error {
	profile := currentTeacherProfile(c)
	if profile == nil {
		return nil
	}

	input := new(createSlotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !input.StartTime.After(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slot start must be in the future",
		})
	}

	slot := models.AvailabilitySlot{
		TeacherID: profile.ID,
		StartTime: input.StartTime,
		IsActive:  true,
	}
	if err := db.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A slot at this start time already exists",
		})
	}

	redis.InvalidateAvailability(profile.ID)

	return c.Status(fiber.StatusCreated).JSON(slot)
}

// GetMySlots lists all of the teacher's published slots, bookable or not.
func GetMySlots(c *fiber.Ctx) error {
	profile := currentTeacherProfile(c)
	if profile == nil {
		return nil
	}

	var slots []models.AvailabilitySlot
	if err := db.DB.Where("teacher_id = ?", profile.ID).
		Order("start_time asc").
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch slots",
		})
	}

	return c.JSON(fiber.Map{
		"slots": slots,
		"count": len(slots),
	})
}

// DeactivateSlot withdraws a window from the marketplace. Slots are never
// deleted because historical sessions may still reference them; deactivation
// only stops new bookings.
func DeactivateSlot(c *fiber.Ctx) error {
	profile := currentTeacherProfile(c)
	if profile == nil {
		return nil
	}

	id := c.Params("id")
	var slot models.AvailabilitySlot
	if err := db.DB.Where("teacher_id = ?", profile.ID).First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Slot not found",
		})
	}

	if err := db.DB.Model(&slot).Update("is_active", false).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to deactivate slot",
		})
	}

	redis.InvalidateAvailability(profile.ID)

	return c.SendStatus(fiber.StatusNoContent)
}

// currentTeacherProfile resolves the logged-in teacher's profile. On failure
// it writes the error response and returns nil.
func currentTeacherProfile(c *fiber.Ctx) *models.TeacherProfile {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
		return nil
	}

	var profile models.TeacherProfile
	err := db.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher profile not found",
		})
		return nil
	}
	if err != nil {
		c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve teacher profile",
		})
		return nil
	}
	return &profile
}
