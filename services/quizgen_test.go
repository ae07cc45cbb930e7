package services

import (
	"errors"
	"testing"
)

const validQuizJSON = `[
	{"question": "What is Go?", "options": ["A language", "A board game", "A verb", "All of these"], "answer": 0},
	{"question": "Who made it?", "options": ["Google", "Apple", "IBM", "Oracle"], "answer": 0}
]`

func TestParseQuizJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"plain json", validQuizJSON, 2, false},
		{"fenced with language tag", "```json\n" + validQuizJSON + "\n```", 2, false},
		{"fenced without tag", "```\n" + validQuizJSON + "\n```", 2, false},
		{"surrounding whitespace", "\n\n  " + validQuizJSON + "  \n", 2, false},
		{"not json", "Sure! Here are five questions.", 0, true},
		{"empty array", "[]", 0, true},
		{"missing question text", `[{"question": "", "options": ["a", "b", "c", "d"], "answer": 0}]`, 0, true},
		{"three options", `[{"question": "q", "options": ["a", "b", "c"], "answer": 0}]`, 0, true},
		{"answer out of range", `[{"question": "q", "options": ["a", "b", "c", "d"], "answer": 4}]`, 0, true},
		{"negative answer", `[{"question": "q", "options": ["a", "b", "c", "d"], "answer": -1}]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := ParseQuizJSON(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQuizFormat) {
					t.Fatalf("ParseQuizJSON() error = %v, want ErrInvalidQuizFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuizJSON() unexpected error: %v", err)
			}
			if len(questions) != tt.wantLen {
				t.Errorf("got %d questions, want %d", len(questions), tt.wantLen)
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `[1]`, `[1]`},
		{"json fence", "```json\n[1]\n```", `[1]`},
		{"bare fence", "```\n[1]\n```", `[1]`},
		{"leading whitespace", "  \n```json\n[1]\n```\n ", `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.in); got != tt.want {
				t.Errorf("StripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
