package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/services"
	"github.com/lorpaxx/foodgram-project-react/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /api/auth/token/login/
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	key, err := ctl.auth.Login(strings.ToLower(req.Email), req.Password)
	if err != nil {
		if repository.IsNotFound(err) {
			resp.NotFound(c, "user not found")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"auth_token": key})
}

// POST /api/auth/token/logout/
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.auth.Logout(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
