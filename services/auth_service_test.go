package services

import (
	"testing"
	"time"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewTokenRepository(db),
		testSecret, time.Hour,
	)
}

func TestLoginLogout(t *testing.T) {
	db := setupDB(t)
	userSvc := NewUserService(repository.NewUserRepository(db))
	user, err := userSvc.Register("a@example.com", "abc", "A", "B", "secret123")
	require.NoError(t, err)

	svc := newAuthService(db)

	key, err := svc.Login("a@example.com", "secret123")
	require.NoError(t, err)
	userID, err := utils.ParseToken(key, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	// a second login reuses the active token
	again, err := svc.Login("a@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, key, again)

	require.NoError(t, svc.Logout(user.ID))
	var count int64
	db.Model(&entity.AuthToken{}).Count(&count)
	assert.Zero(t, count)
}

func TestLoginFailures(t *testing.T) {
	db := setupDB(t)
	userSvc := NewUserService(repository.NewUserRepository(db))
	_, err := userSvc.Register("a@example.com", "abc", "A", "B", "secret123")
	require.NoError(t, err)

	svc := newAuthService(db)

	_, err = svc.Login("a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("missing@example.com", "secret123")
	assert.True(t, repository.IsNotFound(err))
}
