package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizQuestion is one generated multiple-choice question. Answer is the index
// into Options (0..3).
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Quiz is a persisted AI-generated quiz, answer key included, so submissions
// that reference it can be re-graded server-side.
type Quiz struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NoteID uuid.UUID `gorm:"type:uuid;not null;index" json:"note_id"`
	Note   Note      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Questions datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (q *Quiz) DecodeQuestions() ([]QuizQuestion, error) {
	var questions []QuizQuestion
	if err := json.Unmarshal(q.Questions, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (q *Quiz) EncodeQuestions(questions []QuizQuestion) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	q.Questions = datatypes.JSON(raw)
	return nil
}
