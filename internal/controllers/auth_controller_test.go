package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"gigboard/internal/middleware"
	"gigboard/internal/models"
	"gigboard/internal/service"
	"gigboard/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return store.ErrDuplicate
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = user
	return nil
}

func (m *memUserStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) ByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func authRig(t *testing.T) (*gin.Engine, *memUserStore) {
	t.Helper()
	users := &memUserStore{users: map[uint]*models.User{}}
	tokens := middleware.NewTokenManager("test-secret", time.Hour)
	ct := NewAuthController(service.NewAuthService(users, tokens))

	r := gin.New()
	r.POST("/auth/signup", ct.Signup)
	r.POST("/auth/login", ct.Login)
	return r, users
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint(t *testing.T) {
	r, users := authRig(t)

	w := postJSON(r, "/auth/signup", `{
		"first_name": "Edna",
		"last_name": "Mwangi",
		"email": "edna@example.com",
		"password": "hunter22",
		"category": "employer",
		"phone": "0712345678"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			Email    string `json:"email"`
			Category string `json:"category"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.User.Category != "employer" {
		t.Errorf("response = %+v", resp)
	}
	if strings.Contains(w.Body.String(), "hunter22") {
		t.Error("response leaks the password")
	}

	// Duplicate email conflicts.
	w = postJSON(r, "/auth/signup", `{
		"first_name": "Edna",
		"last_name": "Mwangi",
		"email": "EDNA@example.com",
		"password": "hunter22",
		"category": "employer",
		"phone": "0712345678"
	}`)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", w.Code)
	}

	if len(users.users) != 1 {
		t.Errorf("stored users = %d, want 1", len(users.users))
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, users := authRig(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	seed := &models.User{Email: "edna@example.com", Password: string(hash), Category: "employer"}
	if err := users.Create(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := postJSON(r, "/auth/login", `{"email": "edna@example.com", "password": "wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}

	w = postJSON(r, "/auth/login", `{"email": "ghost@example.com", "password": "hunter22"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown email status = %d, want 404", w.Code)
	}

	w = postJSON(r, "/auth/login", `{"email": "edna@example.com", "password": "hunter22"}`)
	if w.Code != http.StatusOK {
		t.Errorf("valid login status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"token"`) {
		t.Error("login response missing token")
	}
}
