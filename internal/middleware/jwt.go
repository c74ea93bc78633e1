package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxCategory = "category"
)

var errInvalidToken = errors.New("invalid token")

// TokenManager mints and verifies the HS256 session credentials. The
// claims carry the subject id, email and account category so role
// checks never need a database read.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiry: expiry}
}

func (m *TokenManager) Issue(userID uint, email, category string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      float64(userID),
		"email":    email,
		"category": category,
		"iat":      now.Unix(),
		"exp":      now.Add(m.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Claims is the decoded credential payload.
type Claims struct {
	UserID   uint
	Email    string
	Category string
}

func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidToken
	}
	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, errInvalidToken
	}
	email, _ := mapClaims["email"].(string)
	category, _ := mapClaims["category"].(string)
	return &Claims{UserID: uint(sub), Email: email, Category: category}, nil
}

// RequireAuth ensures a valid bearer token is present and stores its
// claims in the context.
func (m *TokenManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims, err := m.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxCategory, claims.Category)
		c.Next()
	}
}

// RequireAuthWithRole ensures the token is valid and its category
// claim matches the route's allowed category.
func (m *TokenManager) RequireAuthWithRole(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := m.RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		categoryIfc, exists := c.Get(CtxCategory)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Category not found in token"})
			return
		}
		if got, ok := categoryIfc.(string); !ok || got != category {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// UserID extracts the authenticated subject id set by RequireAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
