package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionDuration is the fixed length of every bookable window and session.
const SessionDuration = time.Hour

// AvailabilitySlot is a teacher-published one-hour bookable window. Only the
// start is stored; the end is implicitly one hour later. A slot is bookable
// while it is active, in the future and not bound to a scheduled session.
type AvailabilitySlot struct {
	gorm.Model
	TeacherID uint           `json:"teacher_id" gorm:"uniqueIndex:idx_slot_teacher_start"`
	Teacher   TeacherProfile `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	StartTime time.Time      `json:"start_time" gorm:"uniqueIndex:idx_slot_teacher_start"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
}

// EndTime is the implicit end of the window.
func (s *AvailabilitySlot) EndTime() time.Time {
	return s.StartTime.Add(SessionDuration)
}

// IsFuture reports whether the window has not started yet.
func (s *AvailabilitySlot) IsFuture(now time.Time) bool {
	return s.StartTime.After(now)
}
