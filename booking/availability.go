package booking

import (
	"time"

	"gorm.io/gorm"

	"github.com/clasesya/clasesya-api/models"
)

// AvailableSlots lists the currently bookable windows of a teacher: active,
// in the future and not referenced by any scheduled session, ordered by start
// time. The (teacher, start_time) unique index keeps the sequence free of
// duplicates.
func AvailableSlots(conn *gorm.DB, teacherID uint, now time.Time) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := conn.
		Where("teacher_id = ? AND is_active = ? AND start_time > ?", teacherID, true, now).
		Where(`NOT EXISTS (
			SELECT 1 FROM sessions
			WHERE sessions.slot_id = availability_slots.id
			AND sessions.status = ?
			AND sessions.deleted_at IS NULL
		)`, models.StatusScheduled).
		Order("start_time asc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
