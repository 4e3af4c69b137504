package db

import (
	"fmt"
	"log"

	"github.com/clasesya/clasesya-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.TeacherProfile{},
		&models.AvailabilitySlot{},
		&models.Session{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// GORM tags cannot express a partial unique index, so the conditional
	// one-scheduled-session-per-slot constraint is created directly. This is
	// what actually closes the race between two concurrent bookings of the
	// same slot; the validator's pre-checks alone would be check-then-write.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_unique_scheduled_slot
		ON sessions (slot_id)
		WHERE status = 'scheduled' AND slot_id IS NOT NULL AND deleted_at IS NULL
	`).Error
	if err != nil {
		log.Fatal("Failed to create scheduled-slot index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
