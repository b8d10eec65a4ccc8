package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/services"
)

// serviceError maps service-layer failures onto the HTTP error taxonomy:
// field errors and conflicts -> 400, ownership -> 403, self-subscription and
// missing rows -> 404.
func serviceError(c *gin.Context, err error) {
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		resp.FieldError(c, fieldErr.Field, fieldErr.Message)
		return
	}
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		resp.Conflict(c, conflictErr.Message)
		return
	}
	switch {
	case errors.Is(err, services.ErrNotOwner):
		resp.Forbidden(c, "you do not have permission to perform this action")
	case errors.Is(err, services.ErrSelfSubscribe):
		resp.NotFoundErrors(c, "can not subscribe to yourself")
	case repository.IsNotFound(err):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
