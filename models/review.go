package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is one rating per (note, user); the composite unique index makes a
// second submission an update instead of a duplicate.
type Review struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NoteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_note_user" json:"note_id"`
	Note   Note      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_note_user" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	UserName string `gorm:"size:150;not null" json:"user_name"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
