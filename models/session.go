package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// Session is a confirmed one-hour booking between one teacher and one student.
// Sessions are never deleted, only transitioned; completed and cancelled are
// terminal states.
type Session struct {
	gorm.Model
	TeacherID   uint              `json:"teacher_id" gorm:"uniqueIndex:idx_session_identity"`
	Teacher     TeacherProfile    `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	StudentID   uint              `json:"student_id" gorm:"uniqueIndex:idx_session_identity"`
	Student     StudentProfile    `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Topic       string            `json:"topic"`
	Description string            `json:"description"`
	StartTime   time.Time         `json:"start_time" gorm:"uniqueIndex:idx_session_identity"`
	EndTime     time.Time         `json:"end_time" gorm:"uniqueIndex:idx_session_identity"`
	Status      SessionStatus     `json:"status" gorm:"type:varchar(20);default:'scheduled'"`
	RoomToken   string            `json:"room_token" gorm:"uniqueIndex"`
	SlotID      *uint             `json:"slot_id"`
	Slot        *AvailabilitySlot `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = StatusScheduled
	}
	return nil
}

// CanTransition reports whether a status change is allowed. Only the scheduled
// state may move, to completed or cancelled.
func CanTransition(from, to SessionStatus) bool {
	if from != StatusScheduled {
		return false
	}
	return to == StatusCompleted || to == StatusCancelled
}

// UpdateStatus applies a status transition and persists it.
func (s *Session) UpdateStatus(tx *gorm.DB, newStatus SessionStatus) error {
	if !CanTransition(s.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", s.Status, newStatus)
	}
	s.Status = newStatus
	return tx.Model(s).Update("status", newStatus).Error
}

// HasFinished is a derived predicate; elapsing time never changes the stored
// status.
func (s *Session) HasFinished(now time.Time) bool {
	return !now.Before(s.EndTime)
}

// IsParticipant reports whether the given account takes part in the session.
// Associations must be preloaded.
func (s *Session) IsParticipant(userID uint) bool {
	return s.Teacher.UserID == userID || s.Student.UserID == userID
}
