package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/studyhub/studyhub-backend/models"
)

// ErrInvalidQuizFormat marks model replies that are not the strict JSON the
// prompt demands; callers surface it as a 500 without retrying.
var ErrInvalidQuizFormat = errors.New("invalid quiz format")

// StripCodeFences removes a surrounding markdown code block, with or without
// a "json" language tag, that the model sometimes adds despite instructions.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseQuizJSON turns a raw model reply into quiz questions. Every question
// must carry exactly 4 options and an answer index within range.
func ParseQuizJSON(raw string) ([]models.QuizQuestion, error) {
	clean := StripCodeFences(raw)

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, ErrInvalidQuizFormat
	}
	if len(questions) == 0 {
		return nil, ErrInvalidQuizFormat
	}
	for _, q := range questions {
		if q.Question == "" || len(q.Options) != 4 || q.Answer < 0 || q.Answer >= len(q.Options) {
			return nil, ErrInvalidQuizFormat
		}
	}
	return questions, nil
}
