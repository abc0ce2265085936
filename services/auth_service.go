package services

import (
	"strings"
	"time"

	"coffeepos/entity"
	"coffeepos/pkg/apperr"
	"coffeepos/repository"
	"coffeepos/utils"

	"golang.org/x/crypto/bcrypt"
)

var validRoles = map[string]bool{
	"admin":    true,
	"staff":    true,
	"customer": true,
}

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user; duplicate emails fail.
func (s *AuthService) Register(email, password, fullName, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, apperr.New(apperr.Validation, "invalid email")
	}
	if len(password) < 6 {
		return nil, apperr.New(apperr.Validation, "password must be at least 6 characters")
	}
	if role == "" {
		role = "customer"
	}
	if !validRoles[role] {
		return nil, apperr.New(apperr.Validation, "invalid role")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "check email failed", err)
	}
	if count > 0 {
		return nil, apperr.New(apperr.Auth, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.New(apperr.Auth, "hash password failed")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(fullName),
		Role:     role,
		IsActive: true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create user failed", err)
	}
	return user, nil
}

// Login checks the credentials and mints a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.New(apperr.Auth, "invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apperr.New(apperr.Auth, "account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Auth, "invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.New(apperr.Auth, "cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// SetRole assigns a role; admin only at the route level.
func (s *AuthService) SetRole(userID uint, role string) (*entity.User, error) {
	if !validRoles[role] {
		return nil, apperr.New(apperr.Validation, "invalid role")
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, apperr.New(apperr.Validation, "user not found")
	}
	if err := s.userRepo.Update(userID, map[string]any{"role": role}); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "update role failed", err)
	}
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) ListUsers() ([]entity.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load users failed", err)
	}
	return users, nil
}
