package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pixels"))

	data, mimeType, err := DecodeBase64Image(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte("pixels"), data)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeBase64ImageRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "plain text", "data:text/plain;base64,aGk=", "data:image/png;base64,%%%"} {
		_, _, err := DecodeBase64Image(in)
		assert.Error(t, err, in)
	}
}

func TestRecipeImageURL(t *testing.T) {
	assert.Equal(t, "/api/recipes/7/image", RecipeImageURL(7, 100))
	assert.Equal(t, "", RecipeImageURL(7, 0))
}
