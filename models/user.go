package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

type User struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:150;not null" json:"name"`
	// USN is nullable: teachers log in by name and carry no USN.
	USN          *string   `gorm:"size:20;uniqueIndex" json:"usn,omitempty"`
	DateOfBirth  time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Branch       string    `gorm:"size:100" json:"branch"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	IsSubscribed bool      `gorm:"not null;default:false" json:"is_subscribed"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Notes       []Note       `gorm:"foreignKey:UploaderID" json:"notes,omitempty"`
	Reviews     []Review     `json:"reviews,omitempty"`
	QuizResults []QuizResult `json:"quiz_results,omitempty"`
}

// DOBString renders the stored date the way login inputs send it.
func (u User) DOBString() string {
	return u.DateOfBirth.UTC().Format("2006-01-02")
}
