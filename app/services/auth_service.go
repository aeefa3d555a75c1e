package services

import (
	"errors"

	"github.com/shashiranjanraj/vyapar/app/events"
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/app/repositories"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"github.com/shashiranjanraj/vyapar/pkg/auth"
	"github.com/shashiranjanraj/vyapar/pkg/event"
	"gorm.io/gorm"
)

// AuthService owns registration and login: the only two paths that ever
// touch a raw password.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// Register hashes the password and persists a new user, returning its ID.
// The existence pre-check produces the friendly duplicate error; the unique
// index on email catches the rare concurrent registration that slips past
// the check, so a duplicate can never commit.
func (s *AuthService) Register(email, password string) (uint, error) {
	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return 0, apperr.Storage("check email", err)
	}
	if exists {
		return 0, apperr.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := models.User{Email: email, Password: hash}
	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperr.ErrDuplicateEmail
		}
		return 0, apperr.Storage("create user", err)
	}

	event.Publish(events.UserRegistered, events.UserRegisteredPayload{UserID: user.ID, Email: user.Email})

	return user.ID, nil
}

// Login verifies the credentials and issues a signed token for the user.
// Unknown email and wrong password stay distinct error paths, matching the
// API contract.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperr.ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID)
}
