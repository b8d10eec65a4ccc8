package repository

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) UpdatePassword(id uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *UserRepository) List(offset, limit int) ([]entity.User, int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var users []entity.User
	err := r.DB.Order("id").Offset(offset).Limit(limit).Find(&users).Error
	return users, count, err
}
