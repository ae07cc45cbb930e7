package utils

import (
	"testing"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123", "1MS21CS001", "Asha", "student", true)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.USN != "1MS21CS001" {
		t.Errorf("USN = %q, want %q", claims.USN, "1MS21CS001")
	}
	if claims.Name != "Asha" {
		t.Errorf("Name = %q, want %q", claims.Name, "Asha")
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want %q", claims.Role, "student")
	}
	if !claims.IsSubscribed {
		t.Error("IsSubscribed = false, want true")
	}
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not-a-jwt"},
		{"truncated token", "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.token); err == nil {
				t.Error("VerifyToken() accepted an invalid token")
			}
		})
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken("user-123", "", "Admin", "admin", true)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := VerifyToken(token); err == nil {
		t.Error("VerifyToken() accepted a token signed with a different secret")
	}
}
