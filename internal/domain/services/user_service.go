package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pharmacy-admin-service/internal/domain/models"

	"gorm.io/gorm"
)

// InterfaceUserService user account operations
type InterfaceUserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

// RegisterInput holds validated registration data.
type RegisterInput struct {
	FirstName string
	LastName  string
	Gender    models.Gender
	BirthDate time.Time
	Phone     string
	Email     string
	Password  string
}

// UserService implements InterfaceUserService on GORM.
type UserService struct {
	DB *gorm.DB
}

// NewUserService creates a user service
func NewUserService(db *gorm.DB) InterfaceUserService {
	return &UserService{DB: db}
}

// NormalizeEmail trims and lowercases an address. Stored emails are always
// normalized, so lookups match regardless of the database collation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	dummyHash     string
	dummyHashOnce sync.Once
)

// equalizes the cost of a login for an unknown email with a wrong password
func compareDummyHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = HashPassword("not-a-real-password")
	})
	CheckPassword(password, dummyHash)
}

// 1 Register creates a non-admin user. The email must be unused.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Gender:         input.Gender,
		BirthDate:      input.BirthDate,
		Phone:          strings.TrimSpace(input.Phone),
		Email:          NormalizeEmail(input.Email),
		HashedPassword: hashed,
		IsAdmin:        false,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return storageError("count users by email", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return storageError("create user", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// 2 Authenticate returns the user owning email when password matches.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			compareDummyHash(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// 3 EmailExists reports whether a user registered with email.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, storageError("count users by email", err)
	}
	return count > 0, nil
}

// 4 GetUserByID loads a user by primary key
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("get user", err)
	}
	return &user, nil
}

// 5 GetUserByEmail loads a user by email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("get user by email", err)
	}
	return &user, nil
}

// 6 EnsureAdmin seeds an admin account when none exists.
// It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, errors.New("admin email and password are required")
	}

	created := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
			return storageError("count admins", err)
		}
		if count > 0 {
			return nil
		}

		hashed, err := HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin := &models.User{
			FirstName:      "System",
			LastName:       "Admin",
			Gender:         models.GenderMale,
			BirthDate:      time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
			Phone:          "0000000000",
			Email:          NormalizeEmail(email),
			HashedPassword: hashed,
			IsAdmin:        true,
		}
		if err := tx.Create(admin).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return storageError("create admin", err)
		}
		created = true
		return nil
	})
	return created, err
}
