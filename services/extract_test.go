package services

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"cut ascii", "hello world", 5, "hello"},
		{"empty input", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	// "é" is two bytes in UTF-8; every cut point must stay valid.
	text := strings.Repeat("é", 10)
	for max := 0; max <= len(text); max++ {
		got := Truncate(text, max)
		if !utf8.ValidString(got) {
			t.Fatalf("Truncate(%d) produced invalid UTF-8: %q", max, got)
		}
		if len(got) > max {
			t.Fatalf("Truncate(%d) returned %d bytes", max, len(got))
		}
	}
}

func TestTruncateKeepsInvalidBytesBeforeCut(t *testing.T) {
	// PDF extraction can yield stray invalid bytes; only a rune split at the
	// cut itself should be trimmed.
	text := "ab\xffcdefgh"
	got := Truncate(text, 6)
	if got != "ab\xffcde" {
		t.Errorf("Truncate() = %q, want %q", got, "ab\xffcde")
	}
	if len(got) != 6 {
		t.Errorf("Truncate() returned %d bytes, want 6", len(got))
	}
}
