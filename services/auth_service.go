package services

import (
	"time"

	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	tokenRepo *repository.TokenRepository
	secret    string
	ttl       time.Duration
}

func NewAuthService(ur *repository.UserRepository, tr *repository.TokenRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: ur, tokenRepo: tr, secret: secret, ttl: ttl}
}

// Login checks credentials and returns the user's token key, reusing the
// active one when present.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", err // gorm.ErrRecordNotFound maps to 404 upstream
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreate(user.ID, func() (string, error) {
		return utils.GenerateToken(user.ID, s.secret, s.ttl)
	})
	if err != nil {
		return "", err
	}
	return token.Key, nil
}

// Logout revokes the user's token.
func (s *AuthService) Logout(userID uint) error {
	return s.tokenRepo.DeleteByUser(userID)
}
