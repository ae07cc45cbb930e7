package models

import (
	"time"

	"github.com/google/uuid"
)

type Badge string

const (
	BadgeGold          Badge = "Gold"
	BadgeSilver        Badge = "Silver"
	BadgeBronze        Badge = "Bronze"
	BadgeParticipation Badge = "Participation"
)

// BadgeForPercentage maps a quiz percentage to its tier. Boundaries are
// inclusive: exactly 90 is Gold, exactly 75 Silver, exactly 50 Bronze.
func BadgeForPercentage(pct float64) Badge {
	switch {
	case pct >= 90:
		return BadgeGold
	case pct >= 75:
		return BadgeSilver
	case pct >= 50:
		return BadgeBronze
	default:
		return BadgeParticipation
	}
}

type QuizResult struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"user"`
	NoteID uuid.UUID `gorm:"type:uuid;not null;index" json:"note_id"`
	Note   Note      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	TopicName      string  `gorm:"size:255;not null" json:"topic_name"`
	Score          int     `gorm:"not null" json:"score"`
	TotalQuestions int     `gorm:"not null" json:"total_questions"`
	Percentage     float64 `gorm:"type:numeric(5,2);not null" json:"percentage"`
	Badge          Badge   `gorm:"type:varchar(20);not null;default:'Participation'" json:"badge"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
