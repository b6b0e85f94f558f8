package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"stylehive/internal/models"
	"stylehive/internal/repositories"
)

// AdminCredential is the single hardcoded admin login. It is a placeholder,
// not a security mechanism.
type AdminCredential struct {
	Email    string
	Password string
	Name     string
}

// DefaultAdminCredential is the demo admin pair.
var DefaultAdminCredential = AdminCredential{
	Email:    "admin@geezshirts.com",
	Password: "admin123",
	Name:     "Ge'ez Admin",
}

const adminAvatar = "https://ui-avatars.com/api/?name=Admin&background=1c1917&color=fff"

// AuthService handles registration, login and the current session of one client.
// Passwords are stored and compared in plaintext.
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	admin       AdminCredential
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, admin AdminCredential) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		admin:       admin,
	}
}

// Register stores a new customer account and signs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &models.StoredUser{
		User: models.User{
			Name:   name,
			Email:  email,
			Role:   models.RoleCustomer,
			Avatar: "https://ui-avatars.com/api/?name=" + url.PathEscape(name) + "&background=random&color=fff",
		},
		Password: password,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	session := user.User
	if err := s.sessionRepo.Set(ctx, &session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return &session, nil
}

// Login checks the admin pair first, then the stored accounts. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var session *models.User

	if s.admin.Email != "" && email == s.admin.Email && password == s.admin.Password {
		session = &models.User{
			Name:   s.admin.Name,
			Email:  s.admin.Email,
			Role:   models.RoleAdmin,
			Avatar: adminAvatar,
		}
	} else {
		stored, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if stored.Password != password {
			return nil, ErrInvalidCredentials
		}
		user := stored.User
		session = &user
	}

	if err := s.sessionRepo.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return session, nil
}

// Logout clears the current session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// CurrentSession returns the signed-in user, or nil.
func (s *AuthService) CurrentSession(ctx context.Context) (*models.User, error) {
	return s.sessionRepo.Get(ctx)
}
