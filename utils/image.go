package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

// DecodeBase64Image parses a "data:image/<type>;base64,<payload>" value.
func DecodeBase64Image(b64 string) (data []byte, mimeType string, err error) {
	if !strings.HasPrefix(b64, "data:image/") {
		return nil, "", errors.New("invalid image format")
	}
	head, payload, ok := strings.Cut(b64, ",")
	if !ok {
		return nil, "", errors.New("invalid image format")
	}
	mimeType = strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	if len(data) > maxImageSize {
		return nil, "", errors.New("file too large")
	}
	return data, mimeType, nil
}

// RecipeImageURL builds the serving path for a stored recipe image,
// empty when the recipe has none.
func RecipeImageURL(recipeID uint, size int64) string {
	if size > 0 {
		return fmt.Sprintf("/api/recipes/%d/image", recipeID)
	}
	return ""
}
