package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lucassfers/My-task-back-end/internal/constants"
	"github.com/Lucassfers/My-task-back-end/internal/models"
	"github.com/Lucassfers/My-task-back-end/internal/repository"
	"github.com/Lucassfers/My-task-back-end/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrNameTooShort         = errors.New("name too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrWrongPassword        = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must differ from the current one")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles accounts and authentication for users and admins.
type AuthService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	logRepo   repository.LogRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, adminRepo repository.AdminRepository, logRepo repository.LogRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		logRepo:   logRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup creates a new user.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < constants.MinUserNameLength {
		return nil, ErrNameTooShort
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// AdminLogin verifies admin credentials.
func (s *AuthService) AdminLogin(input LoginInput) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// CreateAdmin registers a new admin. Admin names are held to a longer
// minimum than user names.
func (s *AuthService) CreateAdmin(input SignupInput) (*models.Admin, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < constants.MinAdminNameLength {
		return nil, ErrNameTooShort
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if _, err := s.adminRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// GetAdmin retrieves an admin by ID.
func (s *AuthService) GetAdmin(id uuid.UUID) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return admin, nil
}

// UpdateUserInput represents a partial profile update. Passwords go through
// ChangePassword instead.
type UpdateUserInput struct {
	UserID uuid.UUID
	Name   *string
	Email  *string
}

// UpdateUser changes the name or email of a user.
func (s *AuthService) UpdateUser(input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < constants.MinUserNameLength {
			return nil, ErrNameTooShort
		}
		user.Name = name
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != user.Email {
			if _, err := s.userRepo.FindByEmail(email); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			user.Email = email
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ListUsers returns a page of users ordered by name.
func (s *AuthService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// ListAdmins returns a page of admins ordered by name.
func (s *AuthService) ListAdmins(params utils.PaginationParams) ([]models.Admin, int64, error) {
	admins, total, err := s.adminRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, total, nil
}

// ChangePasswordInput holds a password change request.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword replaces the password of a user. A wrong current password
// and a successful change both leave an audit log entry.
func (s *AuthService) ChangePassword(input ChangePasswordInput) error {
	user, err := s.GetUser(input.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		entry := &models.Log{
			Description: "Password change attempted with a wrong current password",
			Supplement:  userSupplement(user),
			UserID:      &user.ID,
		}
		if err := s.logRepo.Create(entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return ErrWrongPassword
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.NewPassword)) == nil {
		return ErrSamePassword
	}
	if err := checkPassword(input.NewPassword); err != nil {
		return err
	}

	hash, err := hashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	entry := &models.Log{
		Description: "Password changed",
		Supplement:  userSupplement(user),
		UserID:      &user.ID,
	}
	if err := s.userRepo.UpdatePasswordWithLog(user.ID, hash, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to change password: %w", err)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userSupplement(user *models.User) string {
	return fmt.Sprintf("User: %s - %s", user.ID, user.Name)
}
