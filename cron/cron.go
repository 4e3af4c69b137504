package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for session reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for sessions in the next hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session reminders")
}

// sendSessionReminders checks for upcoming sessions and sends reminders
func sendSessionReminders() {
	var sessions []models.Session
	now := time.Now()
	// Look for sessions starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Teacher.User").Preload("Student.User").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusScheduled, startWindow, endWindow).
		Find(&sessions).Error
	if err != nil {
		log.Printf("Error fetching sessions for reminders: %v", err)
		return
	}

	for _, session := range sessions {
		if err := sendReminderEmail(&session, session.Student.User); err != nil {
			log.Printf("Failed to send reminder for session %d to student: %v", session.ID, err)
		}
		if err := sendReminderEmail(&session, session.Teacher.User); err != nil {
			log.Printf("Failed to send reminder for session %d to teacher: %v", session.ID, err)
		}
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(session *models.Session, recipient models.User) error {
	subject := fmt.Sprintf("Reminder: Upcoming Class - %s", session.Topic)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your class starting in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Topic:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Room:</strong> %s</li>
		</ul>
		<p>Please join the room on time.</p>
		<p>Best regards,</p>
		<p>The ClasesYa Team</p>
	`, recipient.Name, session.Topic,
		session.StartTime.Format("2006-01-02 15:04:05"),
		session.EndTime.Format("2006-01-02 15:04:05"),
		utils.RoomURL(session.RoomToken))

	return utils.SendEmail(recipient.Email, subject, body)
}
