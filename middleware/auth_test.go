package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estay-backend/models"
	"estay-backend/utils"

	"github.com/gin-gonic/gin"
)

func guardedRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/protected", RequireAuth())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func tokenFor(t *testing.T, id uint, role models.UserRole) string {
	t.Helper()
	token, err := utils.GenerateToken(&models.User{ID: id, Username: "tester", Role: role})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := guardedRouter()

	if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status %d, want 401", w.Code)
	}
	if w := doRequest(r, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad scheme: status %d, want 401", w.Code)
	}
	if w := doRequest(r, "Bearer not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d, want 401", w.Code)
	}

	token := tokenFor(t, 42, models.RoleUser)
	if w := doRequest(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	r := guardedRouter(models.RoleMerchant)

	if w := doRequest(r, "Bearer "+tokenFor(t, 1, models.RoleUser)); w.Code != http.StatusForbidden {
		t.Fatalf("user on merchant route: status %d, want 403", w.Code)
	}
	if w := doRequest(r, "Bearer "+tokenFor(t, 2, models.RoleMerchant)); w.Code != http.StatusOK {
		t.Fatalf("merchant: status %d, want 200", w.Code)
	}
	// Admins pass every role guard.
	if w := doRequest(r, "Bearer "+tokenFor(t, 3, models.RoleAdmin)); w.Code != http.StatusOK {
		t.Fatalf("admin: status %d, want 200", w.Code)
	}
}
