package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/pkg/paginate"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/services"
	"github.com/lorpaxx/foodgram-project-react/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

type UserController struct {
	users         *services.UserService
	subscribeRepo *repository.SubscribeRepository
	pageSize      int
}

func NewUserController(us *services.UserService, sr *repository.SubscribeRepository, pageSize int) *UserController {
	return &UserController{users: us, subscribeRepo: sr, pageSize: pageSize}
}

// GET /api/users/
func (ctl *UserController) List(c *gin.Context) {
	p := paginate.Parse(c, ctl.pageSize)
	users, count, err := ctl.users.List(p.Offset(), p.Limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	ids := make([]uint, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}
	subscribed, err := ctl.subscribeRepo.AuthorIDSet(utils.CurrentUserID(c), ids)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	results := make([]UserResponse, 0, len(users))
	for i := range users {
		results = append(results, newUserResponse(&users[i], subscribed[users[i].ID]))
	}
	resp.OK(c, paginate.Envelope(c, count, p, results))
}

// POST /api/users/
func (ctl *UserController) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	user, err := ctl.users.Register(req.Email, req.Username, req.FirstName, req.LastName, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"email":      user.Email,
		"id":         user.ID,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// GET /api/users/:id/
func (ctl *UserController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	user, err := ctl.users.GetByID(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}

	isSubscribed, err := ctl.subscribeRepo.Exists(utils.CurrentUserID(c), user.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, newUserResponse(user, isSubscribed))
}

// GET /api/users/me/
func (ctl *UserController) Me(c *gin.Context) {
	user, err := ctl.users.GetByID(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, newUserResponse(user, false))
}

// POST /api/users/set_password/
func (ctl *UserController) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	if err := ctl.users.SetPassword(utils.CurrentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		serviceError(c, err)
		return
	}
	resp.NoContent(c)
}
