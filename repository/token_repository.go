package repository

import (
	"errors"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

type TokenRepository struct{ DB *gorm.DB }

func NewTokenRepository(db *gorm.DB) *TokenRepository { return &TokenRepository{DB: db} }

// GetOrCreate returns the user's active token, issuing one via newKey only
// when none exists. Logging in twice returns the same key.
func (r *TokenRepository) GetOrCreate(userID uint, newKey func() (string, error)) (*entity.AuthToken, error) {
	var token entity.AuthToken
	err := r.DB.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := newKey()
	if err != nil {
		return nil, err
	}
	token = entity.AuthToken{UserID: userID, Key: key}
	if err := r.DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *TokenRepository) DeleteByUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&entity.AuthToken{}).Error
}
