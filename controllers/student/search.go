package student

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/booking"
	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/redis"
)

// SearchTeachers filters the published teacher profiles by subject substring
// and required availability tags. Subject match is case-insensitive
// containment; availability requires the teacher's tag set to cover every
// requested tag. Results are ordered by teacher name, no ranking.
func SearchTeachers(c *fiber.Ctx) error {
	subject := c.Query("subject")
	required := parseAvailabilityParam(c.Query("availability"))

	for _, tag := range required {
		if !models.IsValidAvailabilityTag(tag) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown availability tag: " + string(tag),
			})
		}
	}

	var teachers []models.TeacherProfile
	query := db.DB.Preload("User")
	if subject != "" {
		query = query.Where("LOWER(subjects) LIKE ?", "%"+strings.ToLower(subject)+"%")
	}
	if err := query.Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch teachers",
		})
	}

	matched := teachers[:0]
	for _, teacher := range teachers {
		if teacher.HasAllAvailability(required) {
			matched = append(matched, teacher)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].User.Name < matched[j].User.Name
	})

	for i := range matched {
		matched[i].User.Password = ""
	}

	return c.JSON(fiber.Map{
		"teachers": matched,
		"count":    len(matched),
	})
}

// GetTeacherDetails returns a teacher's published profile together with the
// currently bookable slots.
func GetTeacherDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var teacher models.TeacherProfile
	if err := db.DB.Preload("User").First(&teacher, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher not found",
		})
	}
	teacher.User.Password = ""

	slots, err := availableSlots(teacher.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch availability",
		})
	}

	return c.JSON(fiber.Map{
		"teacher":             teacher,
		"availability_labels": teacher.AvailabilityLabels(),
		"slots":               slots,
	})
}

// GetTeacherSlots lists a teacher's bookable windows.
func GetTeacherSlots(c *fiber.Ctx) error {
	id := c.Params("id")

	var teacher models.TeacherProfile
	if err := db.DB.First(&teacher, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher not found",
		})
	}

	slots, err := availableSlots(teacher.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch availability",
		})
	}

	return c.JSON(fiber.Map{
		"slots": slots,
		"count": len(slots),
	})
}

// availableSlots serves listings from the cache when possible. Stale reads are
// acceptable here; the booking write path re-checks everything inside its
// transaction.
func availableSlots(teacherID uint) ([]models.AvailabilitySlot, error) {
	if cached, ok := redis.GetAvailability(teacherID); ok {
		return cached, nil
	}
	slots, err := booking.AvailableSlots(db.DB, teacherID, time.Now())
	if err != nil {
		return nil, err
	}
	redis.SetAvailability(teacherID, slots)
	return slots, nil
}

func parseAvailabilityParam(raw string) []models.AvailabilityTag {
	if raw == "" {
		return nil
	}
	var tags []models.AvailabilityTag
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, models.AvailabilityTag(part))
		}
	}
	return tags
}
