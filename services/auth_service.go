//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"car-chat/auth"
	"car-chat/domain"
	"car-chat/errors"
	"car-chat/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
)

type IAuthService interface {
	Login(req auth.LoginRequest) (Token, error)
	Register(req auth.RegisterRequest) (Token, error)
}

type Token string

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	tokens         *auth.TokenManager
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{log: log, userRepository: repo, tokens: tokens}
}

// Register creates a Renter or CarOwner account and returns its first token.
func (s *AuthService) Register(req auth.RegisterRequest) (Token, error) {
	// Validation runs before any argon2 work
	if err := auth.ValidateRegister(req); err != nil {
		if stderrors.Is(err, errors.ErrInvalidPassword) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	role := domain.Role(req.Role)
	userID, err := s.userRepository.CreateUser(req.Email, hashed, role)
	if err != nil {
		return "", err
	}
	s.log.Info("Account created", "user_id", userID, "role", role)
	return s.issue(userID, role)
}

func (s *AuthService) Login(req auth.LoginRequest) (Token, error) {
	if err := auth.ValidateLogin(req); err != nil {
		return "", errors.ErrInvalidCredentials
	}
	user, err := s.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		// Same answer for unknown email and wrong password
		return "", errors.ErrInvalidCredentials
	}
	match, err := auth.ComparePassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}
	return s.issue(user.ID, user.Role)
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
// Admins cannot register themselves, so this is the only way one appears.
func (s *AuthService) EnsureAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := s.userRepository.GetUserByEmail(email)
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			return fmt.Errorf("bootstrap admin %s is registered as %s: %w", email, existing.Role, errors.ErrUserAlreadyExists)
		}
		return nil
	}
	if !stderrors.Is(err, errors.ErrUserNotFound) {
		return err
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}
	userID, err := s.userRepository.CreateUser(email, hashed, domain.RoleAdmin)
	if err != nil && !stderrors.Is(err, errors.ErrUserAlreadyExists) {
		return err
	}
	s.log.Info("Bootstrap admin ready", "user_id", userID)
	return nil
}

func (s *AuthService) issue(userID string, role domain.Role) (Token, error) {
	token, err := s.tokens.Generate(userID, role)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}
