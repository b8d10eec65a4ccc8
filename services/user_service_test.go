package services

import (
	"testing"

	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Register("New@Example.com", "newbie", "New", "User", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	// duplicates come back as field errors
	var fieldErr *FieldError
	_, err = svc.Register("new@example.com", "someone", "A", "B", "secret123")
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "email", fieldErr.Field)

	_, err = svc.Register("other@example.com", "newbie", "A", "B", "secret123")
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "username", fieldErr.Field)
}

func TestSetPassword(t *testing.T) {
	db := setupDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Register("a@example.com", "abc", "A", "B", "oldpassword")
	require.NoError(t, err)

	var fieldErr *FieldError
	err = svc.SetPassword(user.ID, "wrong", "newpassword")
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "current_password", fieldErr.Field)

	require.NoError(t, svc.SetPassword(user.ID, "oldpassword", "newpassword"))

	updated, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword")))
}
