package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
	"supreme_fitness_backend/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrPendingApproval    = errors.New("account pending approval")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Data Transfer Objects (DTOs) ---

// RegisterRequest DTO
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName string  `json:"full_name" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// --- AuthService Interface ---
type AuthService interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(req LoginRequest) (*AuthResponse, error)
	ListUsers() ([]models.User, error)
	ApproveUser(userID string) error
	DeactivateUser(userID string) error
}

// --- authService Implementation ---
type authService struct {
	userRepo repositories.UserRepository
	notifier NotificationService
	tokens   *utils.TokenManager
	db       *sql.DB // SQLExecutor for single repo calls
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(ur repositories.UserRepository, ns NotificationService, tm *utils.TokenManager, db *sql.DB) AuthService {
	return &authService{
		userRepo: ur,
		notifier: ns,
		tokens:   tm,
		db:       db,
	}
}

// Register creates an account. Members and admins are approved immediately;
// trainers wait for admin approval, and every admin is notified a trainer
// registration is pending.
func (s *authService) Register(req RegisterRequest) (*models.User, error) {
	if !models.IsValidRole(req.Role) {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidRole, req.Role)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hashedBytes),
		FullName:     req.FullName,
		Role:         req.Role,
		Phone:        req.Phone,
		IsActive:     true,
		IsApproved:   req.Role == models.RoleMember || req.Role == models.RoleAdmin,
	}

	if err := s.userRepo.CreateUser(s.db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if user.Role == models.RoleTrainer {
		adminIDs, listErr := s.userRepo.ListUserIDsByRole(models.RoleAdmin)
		if listErr != nil {
			utils.LogError(listErr, "could not list admins for trainer registration notice")
		}
		for _, adminID := range adminIDs {
			s.notifier.Notify(adminID,
				"New Registration Pending",
				fmt.Sprintf("New %s registration: %s", user.Role, user.FullName),
				models.NotificationTypeRegistration)
		}
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues an access token. Deactivated and
// unapproved accounts are rejected even with the right password.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	if !user.IsApproved {
		return nil, ErrPendingApproval
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	user.PasswordHash = ""
	return &AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

func (s *authService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// ApproveUser grants the approval gate and tells the user about it.
func (s *authService) ApproveUser(userID string) error {
	if err := s.userRepo.SetApproved(userID, true); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to approve user: %w", err)
	}

	s.notifier.Notify(userID,
		"Account Approved",
		"Your account has been approved. You can now access all features.",
		models.NotificationTypeApproval)
	return nil
}

func (s *authService) DeactivateUser(userID string) error {
	if err := s.userRepo.SetActive(userID, false); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
