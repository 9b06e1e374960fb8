package services

import (
	"fmt"
	"strings"

	"estay-backend/models"
	"estay-backend/repositories"
	"estay-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account and returns it with a signed access token.
func (s *AuthService) Register(username, email, password string, role models.UserRole) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if role == "" {
		role = models.RoleUser
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	existing, err = s.users.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

// Login authenticates by username or email. Both unknown-account and
// wrong-password collapse into ErrInvalidCredentials.
func (s *AuthService) Login(usernameOrEmail, password string) (*models.User, string, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)

	user, err := s.users.GetByUsername(usernameOrEmail)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		user, err = s.users.GetByEmail(usernameOrEmail)
		if err != nil {
			return nil, "", fmt.Errorf("failed to look up user: %w", err)
		}
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}
