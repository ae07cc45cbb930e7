package policy

import (
	"testing"

	"github.com/studyhub/studyhub-backend/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		subscribed bool
		action     Action
		want       bool
	}{
		{"everyone views notes", models.RoleStudent, false, ActionViewNotes, true},
		{"free student gets preview only", models.RoleStudent, false, ActionViewFullPDF, false},
		{"subscribed student reads full pdf", models.RoleStudent, true, ActionViewFullPDF, true},
		{"free student blocked from ai", models.RoleStudent, false, ActionUseAI, false},
		{"subscribed student uses ai", models.RoleStudent, true, ActionUseAI, true},
		{"subscribed student still cannot upload", models.RoleStudent, true, ActionUploadNotes, false},
		{"teacher uploads", models.RoleTeacher, false, ActionUploadNotes, true},
		{"teacher edits", models.RoleTeacher, false, ActionEditNotes, true},
		{"teacher deletes", models.RoleTeacher, false, ActionDeleteNotes, true},
		{"teacher cannot manage users", models.RoleTeacher, false, ActionManageUsers, false},
		{"teacher cannot reset leaderboard", models.RoleTeacher, false, ActionResetLeaderboard, false},
		{"admin manages users", models.RoleAdmin, false, ActionManageUsers, true},
		{"admin resets leaderboard", models.RoleAdmin, false, ActionResetLeaderboard, true},
		{"admin uses ai without subscription", models.RoleAdmin, false, ActionUseAI, true},
		{"student submits quiz", models.RoleStudent, false, ActionSubmitQuiz, true},
		{"student rates notes", models.RoleStudent, false, ActionRateNotes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.subscribed, tt.action); got != tt.want {
				t.Errorf("Can(%s, %v, %s) = %v, want %v", tt.role, tt.subscribed, tt.action, got, tt.want)
			}
		})
	}
}

func TestIsStaff(t *testing.T) {
	if !IsStaff(models.RoleAdmin) || !IsStaff(models.RoleTeacher) {
		t.Error("admin and teacher should be staff")
	}
	if IsStaff(models.RoleStudent) {
		t.Error("student should not be staff")
	}
}

func TestActionListMatchesAllowed(t *testing.T) {
	for _, role := range []models.UserRole{models.RoleAdmin, models.RoleTeacher, models.RoleStudent} {
		for _, subscribed := range []bool{true, false} {
			allowed := Allowed(role, subscribed)
			list := ActionList(role, subscribed)
			if len(list) != len(allowed) {
				t.Errorf("role %s subscribed %v: list has %d actions, allowed set has %d",
					role, subscribed, len(list), len(allowed))
			}
			for _, a := range list {
				if !allowed[a] {
					t.Errorf("role %s subscribed %v: list contains disallowed action %s", role, subscribed, a)
				}
			}
		}
	}
}
