package services

import (
	"github.com/shashiranjanraj/vyapar/app/models"
	"github.com/shashiranjanraj/vyapar/app/repositories"
	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"gorm.io/gorm"
)

// UserService exposes read access to user records.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repositories.NewUserRepository(db)}
}

// List returns every registered user. Password hashes never serialise.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, apperr.Storage("list users", err)
	}
	return users, nil
}
