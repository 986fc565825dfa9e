package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tastybites/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("email is required")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

type AuthService struct {
	accounts AccountRepository
	sessions SessionStore
}

func NewAuthService(accounts AccountRepository, sessions SessionStore) *AuthService {
	return &AuthService{accounts: accounts, sessions: sessions}
}

func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	existing, err := s.accounts.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.accounts.CreateUser(user, fullName); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an opaque session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.accounts.GetUserByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.SaveSession(ctx, token, user.ID); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// Authenticate resolves a token to a user id; 0 means no identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	return s.sessions.SessionUserID(ctx, token)
}

func (s *AuthService) Profile(userID int) (*domain.Profile, error) {
	return s.accounts.GetProfile(userID)
}

func (s *AuthService) UpdateProfile(profile *domain.Profile) error {
	return s.accounts.UpdateProfile(profile)
}

// IsAdmin checks the privilege flag on the identity's profile. A missing
// profile means no privilege, not an error.
func (s *AuthService) IsAdmin(userID int) (bool, error) {
	profile, err := s.accounts.GetProfile(userID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	return profile.IsAdmin, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
