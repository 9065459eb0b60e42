package services

import (
	"errors"
	"fmt"
	"strings"

	"canteen-backend/apperr"
	"canteen-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func isDuplicateKeyErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	// SQLite in tests reports constraint violations by message.
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}

// Register creates a DINER account with a bcrypt password hash. Username and
// email collisions surface as DuplicateEntry.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := models.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Password: string(hash),
		Phone:    strings.TrimSpace(input.Phone),
		Role:     models.RoleDiner,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.DuplicateEntry("username or email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate verifies username/password and returns the account.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("db error loading user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user %d not found", id)
		}
		return nil, fmt.Errorf("db error loading user %d: %w", id, err)
	}
	return &user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

func validRole(role string) bool {
	return role == models.RoleDiner || role == models.RoleStaff || role == models.RoleAdmin
}

// UpdateRole changes a user's role. Admin surface only.
func (s *UserService) UpdateRole(id uint, rawRole string) (*models.User, error) {
	role := strings.ToUpper(strings.TrimSpace(rawRole))
	if !validRole(role) {
		return nil, apperr.InvalidInput("unknown role %q", rawRole)
	}
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role for user %d: %w", id, err)
	}
	return user, nil
}

// ResetPassword overwrites a user's password hash. Admin surface only.
func (s *UserService) ResetPassword(id uint, newPassword string) error {
	if len(newPassword) < 6 {
		return apperr.InvalidInput("password must be at least 6 characters")
	}
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.DB.Model(user).Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to reset password for user %d: %w", id, err)
	}
	return nil
}

// Delete soft-deletes a user account.
func (s *UserService) Delete(id uint) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(user).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
