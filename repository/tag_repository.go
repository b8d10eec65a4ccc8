package repository

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

type TagRepository struct{ DB *gorm.DB }

func NewTagRepository(db *gorm.DB) *TagRepository { return &TagRepository{DB: db} }

func (r *TagRepository) List() ([]entity.Tag, error) {
	var tags []entity.Tag
	err := r.DB.Order("slug").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) FindByID(id uint) (*entity.Tag, error) {
	var tag entity.Tag
	if err := r.DB.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// CountByIDs counts how many of the given ids reference existing tags.
func (r *TagRepository) CountByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&entity.Tag{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
