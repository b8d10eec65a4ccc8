package resp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// FieldErrors renders a validation failure keyed by field name, e.g.
// {"cooking_time": ["must be greater than 0"]}.
func FieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

func FieldError(c *gin.Context, field, msg string) {
	FieldErrors(c, map[string][]string{field: {msg}})
}

// Conflict renders duplicate-membership style failures: {"errors": "..."}.
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"detail": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": msg})
}

func NotFoundErrors(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"errors": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

// BindError maps a ShouldBindJSON error to field-keyed messages where the
// validator reports per-field failures, otherwise to non_field_errors.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			name := snakeCase(fe.Field())
			fields[name] = append(fields[name], bindMessage(fe))
		}
		FieldErrors(c, fields)
		return
	}
	FieldErrors(c, map[string][]string{"non_field_errors": {err.Error()}})
}

// snakeCase turns a Go field name into its JSON payload name
// (CookingTime -> cooking_time).
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func bindMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return "value is too short or too small"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "invalid value"
	}
}
