// Package policy centralizes what a (role, subscription) pair may do, so the
// API layer never branches on role strings directly.
package policy

import "github.com/studyhub/studyhub-backend/models"

type Action string

const (
	ActionViewNotes        Action = "view_notes"
	ActionViewFullPDF      Action = "view_full_pdf"
	ActionUploadNotes      Action = "upload_notes"
	ActionEditNotes        Action = "edit_notes"
	ActionDeleteNotes      Action = "delete_notes"
	ActionRateNotes        Action = "rate_notes"
	ActionUseAI            Action = "use_ai"
	ActionSubmitQuiz       Action = "submit_quiz"
	ActionManageUsers      Action = "manage_users"
	ActionResetLeaderboard Action = "reset_leaderboard"
)

// Allowed returns the action set for a role plus subscription state.
func Allowed(role models.UserRole, subscribed bool) map[Action]bool {
	actions := map[Action]bool{
		ActionViewNotes:  true,
		ActionRateNotes:  true,
		ActionSubmitQuiz: true,
	}

	switch role {
	case models.RoleAdmin:
		actions[ActionViewFullPDF] = true
		actions[ActionUseAI] = true
		actions[ActionUploadNotes] = true
		actions[ActionEditNotes] = true
		actions[ActionDeleteNotes] = true
		actions[ActionManageUsers] = true
		actions[ActionResetLeaderboard] = true
	case models.RoleTeacher:
		actions[ActionViewFullPDF] = true
		actions[ActionUseAI] = true
		actions[ActionUploadNotes] = true
		actions[ActionEditNotes] = true
		actions[ActionDeleteNotes] = true
	case models.RoleStudent:
		if subscribed {
			actions[ActionViewFullPDF] = true
			actions[ActionUseAI] = true
		}
	}
	return actions
}

// Can is the single-action convenience used by middleware.
func Can(role models.UserRole, subscribed bool, action Action) bool {
	return Allowed(role, subscribed)[action]
}

// IsStaff reports whether the role bypasses subscription checks.
func IsStaff(role models.UserRole) bool {
	return role == models.RoleAdmin || role == models.RoleTeacher
}

// ActionList flattens the allowed set for JSON responses.
func ActionList(role models.UserRole, subscribed bool) []Action {
	allowed := Allowed(role, subscribed)
	out := make([]Action, 0, len(allowed))
	for _, a := range []Action{
		ActionViewNotes, ActionViewFullPDF, ActionUploadNotes, ActionEditNotes,
		ActionDeleteNotes, ActionRateNotes, ActionUseAI, ActionSubmitQuiz,
		ActionManageUsers, ActionResetLeaderboard,
	} {
		if allowed[a] {
			out = append(out, a)
		}
	}
	return out
}
