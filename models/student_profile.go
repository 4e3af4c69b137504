package models

import (
	"gorm.io/gorm"
)

// StudentProfile holds the free-text learning preferences of a student account.
// It is created at signup, or lazily the first time the student edits their profile.
type StudentProfile struct {
	gorm.Model
	UserID           uint      `json:"user_id" gorm:"uniqueIndex"`
	User             User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	PreferredSubject string    `json:"preferred_subject"`
	LearningGoals    string    `json:"learning_goals"`
	Sessions         []Session `json:"sessions,omitempty" gorm:"foreignKey:StudentID"`
}
