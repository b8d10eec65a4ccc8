package services

import (
	"strings"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(ur *repository.UserRepository) *UserService {
	return &UserService{userRepo: ur}
}

// Register creates a user; duplicate email/username come back as field errors.
func (s *UserService) Register(email, username, firstName, lastName, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if count, err := s.userRepo.CountByEmail(email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, Fieldf("email", "user with this email already exists")
	}
	if count, err := s.userRepo.CountByUsername(username); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, Fieldf("username", "user with this username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Username:  username,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Password:  string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (*entity.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *UserService) List(offset, limit int) ([]entity.User, int64, error) {
	return s.userRepo.List(offset, limit)
}

// SetPassword verifies the current password before replacing it.
func (s *UserService) SetPassword(userID uint, current, next string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return Fieldf("current_password", "wrong password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}
