package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapar/app/services"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/response"
)

// UserController exposes user listings.
type UserController struct {
	service *services.UserService
}

func NewUserController() *UserController {
	return &UserController{service: services.NewUserService(database.DB)}
}

// Index returns all registered users.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, users)
}
