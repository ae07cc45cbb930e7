package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatHistory holds the whole conversation for one (note, user) pair as a
// JSONB document; the unique index keeps it at one row per pair.
type ChatHistory struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NoteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_note_user" json:"note_id"`
	Note   Note      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_note_user" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Messages datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"messages"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DecodeMessages always yields a non-nil slice, so handlers render an empty
// history as [] rather than null.
func (h *ChatHistory) DecodeMessages() ([]ChatMessage, error) {
	msgs := []ChatMessage{}
	if len(h.Messages) == 0 {
		return msgs, nil
	}
	if err := json.Unmarshal(h.Messages, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []ChatMessage{}
	}
	return msgs, nil
}

func (h *ChatHistory) EncodeMessages(msgs []ChatMessage) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	h.Messages = datatypes.JSON(raw)
	return nil
}
