package models

import (
	"time"
)

type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTeacher UserType = "teacher"
)

// User is the shared account record. The role is fixed at signup and decides
// which profile (student or teacher) the account owns.
type User struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name"`
	Email          string          `json:"email" gorm:"unique"`
	Password       string          `json:"password,omitempty"`
	UserType       UserType        `json:"user_type" gorm:"type:varchar(20);default:'student'"`
	StudentProfile *StudentProfile `json:"student_profile,omitempty" gorm:"foreignKey:UserID"`
	TeacherProfile *TeacherProfile `json:"teacher_profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (u *User) IsStudent() bool {
	return u.UserType == UserTypeStudent
}

func (u *User) IsTeacher() bool {
	return u.UserType == UserTypeTeacher
}
