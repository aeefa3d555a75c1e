package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vyapar/app/services"
	"github.com/shashiranjanraj/vyapar/pkg/bind"
	"github.com/shashiranjanraj/vyapar/pkg/database"
	"github.com/shashiranjanraj/vyapar/pkg/response"
)

// AuthController handles registration and login.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService(database.DB)}
}

type registerInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a new account and returns its user ID.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerInput
	if err := bind.JSON(r, &body); err != nil {
		response.FromError(w, err)
		return
	}

	userID, err := c.service.Register(body.Email, body.Password)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]uint{"userId": userID})
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates the credentials and returns a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginInput
	if err := bind.JSON(r, &body); err != nil {
		response.FromError(w, err)
		return
	}

	token, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, map[string]string{"token": token})
}
