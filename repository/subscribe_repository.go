package repository

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

type SubscribeRepository struct{ DB *gorm.DB }

func NewSubscribeRepository(db *gorm.DB) *SubscribeRepository {
	return &SubscribeRepository{DB: db}
}

func (r *SubscribeRepository) Exists(userID, authorID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Subscribe{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error
	return count > 0, err
}

func (r *SubscribeRepository) Add(userID, authorID uint) error {
	return r.DB.Create(&entity.Subscribe{UserID: userID, AuthorID: authorID}).Error
}

func (r *SubscribeRepository) Remove(userID, authorID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&entity.Subscribe{})
	return res.RowsAffected, res.Error
}

// ListAuthors returns the authors the user is subscribed to, with the total.
func (r *SubscribeRepository) ListAuthors(userID uint, offset, limit int) ([]entity.User, int64, error) {
	base := r.DB.Model(&entity.User{}).
		Joins("JOIN subscribes ON subscribes.author_id = users.id").
		Where("subscribes.user_id = ?", userID)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var authors []entity.User
	err := base.Order("users.id").Offset(offset).Limit(limit).Find(&authors).Error
	return authors, count, err
}

// AuthorIDSet returns which of the given author ids the user is subscribed to.
func (r *SubscribeRepository) AuthorIDSet(userID uint, authorIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return set, nil
	}
	var ids []uint
	err := r.DB.Model(&entity.Subscribe{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
