package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	key, err := GenerateToken(42, "secret", time.Hour)
	require.NoError(t, err)

	userID, err := ParseToken(key, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestTokenWrongSecret(t *testing.T) {
	key, err := GenerateToken(42, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(key, "other")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	key, err := GenerateToken(42, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(key, "secret")
	assert.Error(t, err)
}
