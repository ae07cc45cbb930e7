package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/studyhub-backend/policy"
	"github.com/studyhub/studyhub-backend/utils"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxRole),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("user-1", "1MS21CS001", "Asha", "student", false)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{"no token", "", "", http.StatusUnauthorized},
		{"bearer token", "Authorization", "Bearer " + token, http.StatusOK},
		{"x-auth-token", "x-auth-token", token, http.StatusOK},
		{"malformed authorization header", "Authorization", token, http.StatusUnauthorized},
		{"invalid token", "x-auth-token", "garbage", http.StatusUnauthorized},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareSetsContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("user-42", "", "Priya", "teacher", false)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotID, gotName, gotRole string
	r.GET("/whoami", AuthMiddleware(), func(c *gin.Context) {
		gotID = c.GetString(CtxUserID)
		gotName = c.GetString(CtxUserName)
		gotRole = c.GetString(CtxRole)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-auth-token", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotID != "user-42" || gotName != "Priya" || gotRole != "teacher" {
		t.Errorf("context = (%q, %q, %q), want (user-42, Priya, teacher)", gotID, gotName, gotRole)
	}
}

func TestRequireAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       string
		action     policy.Action
		wantStatus int
	}{
		{"admin uploads", "admin", policy.ActionUploadNotes, http.StatusOK},
		{"teacher uploads", "teacher", policy.ActionUploadNotes, http.StatusOK},
		{"student blocked from upload", "student", policy.ActionUploadNotes, http.StatusForbidden},
		{"teacher blocked from user management", "teacher", policy.ActionManageUsers, http.StatusForbidden},
		{"admin manages users", "admin", policy.ActionManageUsers, http.StatusOK},
		{"missing role", "", policy.ActionUploadNotes, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/gated", func(c *gin.Context) {
				if tt.role != "" {
					c.Set(CtxRole, tt.role)
				}
			}, RequireAction(tt.action), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/gated", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
