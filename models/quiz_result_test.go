package models

import "testing"

func TestBadgeForPercentage(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want Badge
	}{
		{"perfect score", 100, BadgeGold},
		{"gold lower bound", 90, BadgeGold},
		{"just below gold", 89.99, BadgeSilver},
		{"silver lower bound", 75, BadgeSilver},
		{"just below silver", 74.99, BadgeBronze},
		{"bronze lower bound", 50, BadgeBronze},
		{"just below bronze", 49.99, BadgeParticipation},
		{"zero", 0, BadgeParticipation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BadgeForPercentage(tt.pct); got != tt.want {
				t.Errorf("BadgeForPercentage(%v) = %q, want %q", tt.pct, got, tt.want)
			}
		})
	}
}
