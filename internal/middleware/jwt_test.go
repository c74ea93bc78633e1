package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(7, "edna@example.com", "employer")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "edna@example.com" || claims.Category != "employer" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParse_RejectsForgedAndExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)
	expired := NewTokenManager("test-secret", -time.Minute)

	forged, _ := other.Issue(7, "e@example.com", "employer")
	if _, err := m.Parse(forged); err == nil {
		t.Error("token signed with another secret accepted")
	}

	stale, _ := expired.Issue(7, "e@example.com", "employer")
	if _, err := m.Parse(stale); err == nil {
		t.Error("expired token accepted")
	}

	if _, err := m.Parse("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func authTestRouter(m *TokenManager) *gin.Engine {
	r := gin.New()
	r.GET("/any", m.RequireAuth(), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/employer-only", m.RequireAuthWithRole("employer"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	r := authTestRouter(m)

	// No header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}

	// Valid token
	token, _ := m.Issue(7, "e@example.com", "worker")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/any", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", w.Code)
	}
}

func TestRequireAuthWithRole(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	r := authTestRouter(m)

	workerToken, _ := m.Issue(7, "w@example.com", "worker")
	employerToken, _ := m.Issue(8, "e@example.com", "employer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employer-only", nil)
	req.Header.Set("Authorization", "Bearer "+workerToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("worker on employer route: status = %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/employer-only", nil)
	req.Header.Set("Authorization", "Bearer "+employerToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("employer on employer route: status = %d, want 200", w.Code)
	}
}
