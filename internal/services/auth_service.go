// internal/services/auth_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/doniphane/clickandship/internal/config"
	"github.com/doniphane/clickandship/internal/models"
	"github.com/doniphane/clickandship/internal/repository"
	"github.com/doniphane/clickandship/internal/utils"
)

// minPasswordLength applies to the stricter createUser variant.
const minPasswordLength = 6

type AuthService struct {
	users repository.UserRepository
	cfg   *config.Config
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreatedUser is the response shape of a registration: id and email only,
// never the password hash.
type CreatedUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

// Register creates an account from an email and a password. Both fields are
// required; a duplicate email is a conflict.
func (s *AuthService) Register(req *RegisterRequest) (*CreatedUser, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidArgument)
	}
	return s.createUser(req.Email, req.Password)
}

// CreateUser is the stricter registration variant: it additionally checks
// the email shape and a minimum password length before the uniqueness check.
func (s *AuthService) CreateUser(req *RegisterRequest) (*CreatedUser, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidArgument)
	}

	email := strings.TrimSpace(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidArgument)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must contain at least %d characters",
			ErrInvalidArgument, minPasswordLength)
	}

	return s.createUser(email, req.Password)
}

func (s *AuthService) createUser(email, password string) (*CreatedUser, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		Email: email,
		Roles: pq.StringArray{models.RoleUser},
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return &CreatedUser{ID: user.ID, Email: user.Email}, nil
}

// Login verifies the credentials and issues an access token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidArgument)
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Roles, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

// GetUserByID loads the authenticated user's profile.
func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// DeleteAccount removes the user together with their cart and order history.
func (s *AuthService) DeleteAccount(userID uuid.UUID) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.Delete(user)
}
