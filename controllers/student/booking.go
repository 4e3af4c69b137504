package student

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clasesya/clasesya-api/booking"
	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/redis"
	"github.com/clasesya/clasesya-api/utils"
)

type bookSessionInput struct {
	SlotID      uint   `json:"slot_id"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// BookSession books a published slot for the logged-in student. All
// validation and persistence happens atomically inside booking.Book; losing
// the race against a concurrent request surfaces as a conflict the student
// resolves by picking another slot.
func BookSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(bookSessionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.SlotID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slot_id is required",
		})
	}
	if input.Topic == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "topic is required",
		})
	}

	// Resolve the student profile, creating it lazily for accounts that
	// predate profile creation at signup.
	var profile models.StudentProfile
	if err := db.DB.Where(models.StudentProfile{UserID: userID}).
		FirstOrCreate(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve student profile",
		})
	}

	var slot models.AvailabilitySlot
	if err := db.DB.First(&slot, input.SlotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability slot not found",
		})
	}

	session, err := booking.Book(db.DB, booking.Request{
		TeacherID:   slot.TeacherID,
		StudentID:   profile.ID,
		Topic:       input.Topic,
		Description: input.Description,
		SlotID:      slot.ID,
	}, time.Now())
	if err != nil {
		return bookingError(c, err)
	}

	redis.InvalidateAvailability(slot.TeacherID)

	sendBookingEmails(session)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session":  session,
		"room_url": utils.RoomURL(session.RoomToken),
	})
}

func bookingError(c *fiber.Ctx, err error) error {
	var ve *booking.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": ve.Message,
			"field": ve.Field,
		})
	case errors.Is(err, booking.ErrSlotNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability slot not found",
		})
	case errors.Is(err, booking.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Slot already reserved, refresh availability and try again",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to book session",
			Error:   err.Error(),
		})
	}
}

// sendBookingEmails notifies both participants. Email failures are logged,
// never rolled back into the booking.
func sendBookingEmails(session *models.Session) {
	var teacher models.TeacherProfile
	if err := db.DB.Preload("User").First(&teacher, session.TeacherID).Error; err != nil {
		log.Printf("Failed to load teacher for booking email: %v", err)
		return
	}
	var student models.StudentProfile
	if err := db.DB.Preload("User").First(&student, session.StudentID).Error; err != nil {
		log.Printf("Failed to load student for booking email: %v", err)
		return
	}

	roomURL := utils.RoomURL(session.RoomToken)

	studentBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your class has been booked.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Topic:</strong> %s</li>
			<li><strong>Teacher:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Room:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The ClasesYa Team</p>
	`, student.User.Name, session.Topic, teacher.User.Name,
		session.StartTime.Format("2006-01-02 15:04:05"),
		session.EndTime.Format("2006-01-02 15:04:05"),
		roomURL)
	if err := utils.SendEmail(student.User.Email, "Class Booked", studentBody); err != nil {
		log.Printf("Failed to send booking email to student: %v", err)
	}

	teacherBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A student booked one of your available slots.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Topic:</strong> %s</li>
			<li><strong>Student:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Room:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The ClasesYa Team</p>
	`, teacher.User.Name, session.Topic, student.User.Name,
		session.StartTime.Format("2006-01-02 15:04:05"),
		session.EndTime.Format("2006-01-02 15:04:05"),
		roomURL)
	if err := utils.SendEmail(teacher.User.Email, "New Class Booked", teacherBody); err != nil {
		log.Printf("Failed to send booking email to teacher: %v", err)
	}
}
