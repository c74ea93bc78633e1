package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"gigboard/internal/models"
	"gigboard/internal/store"
)

// TokenIssuer mints a signed credential carrying the subject id, email
// and account category. Implemented by middleware.TokenManager.
type TokenIssuer interface {
	Issue(userID uint, email, category string) (string, error)
}

// AuthService handles signup and credential verification.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// UserSummary is the non-sensitive projection returned with a token.
// It never carries the password hash.
type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Category  string `json:"category"`
}

// AuthResult pairs a freshly minted token with its user summary.
type AuthResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func summary(u *models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Category:  u.Category,
	}
}

// RegisterInput carries signup fields. Phone is required for both
// categories; expertise only applies to workers.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Category  string
	Phone     string
	PhotoURL  string
	Expertise []string
}

func (in RegisterInput) validate() error {
	var errs FieldErrors
	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, FieldError{"first_name", "must not be empty"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, FieldError{"last_name", "must not be empty"})
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, FieldError{"email", "must not be empty"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, FieldError{"password", "must be at least 6 characters"})
	}
	switch in.Category {
	case models.CategoryEmployer, models.CategoryWorker:
	default:
		errs = append(errs, FieldError{"category", "must be employer or worker"})
	}
	if !ValidPhone(in.Phone) {
		errs = append(errs, FieldError{"phone", "must be exactly 10 digits"})
	}
	return errs.OrNil()
}

// Register creates the user plus its actor record in one store
// transaction and logs the account straight in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     normalizeEmail(in.Email),
		Password:  string(hash),
		Category:  in.Category,
	}
	switch in.Category {
	case models.CategoryEmployer:
		user.Employer = &models.Employer{Phone: in.Phone, PhotoURL: in.PhotoURL}
	case models.CategoryWorker:
		user.Worker = &models.Worker{Phone: in.Phone, PhotoURL: in.PhotoURL, Expertise: pq.StringArray(in.Expertise)}
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Category)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: summary(user)}, nil
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password are reported as distinct failures.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.ByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Category)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: summary(user)}, nil
}

// ValidateUser resolves a token subject back to a user, for the
// request-authentication path. A missing user is reported as nil, nil.
func (s *AuthService) ValidateUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
