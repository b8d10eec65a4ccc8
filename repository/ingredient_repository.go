package repository

import (
	"strings"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

type IngredientRepository struct{ DB *gorm.DB }

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

// List returns ingredients with their unit, optionally narrowed to names
// starting with prefix (case-insensitive).
func (r *IngredientRepository) List(prefix string) ([]entity.Ingredient, error) {
	q := r.DB.Preload("MeasurementUnit").Order("name")
	if prefix != "" {
		q = q.Where("LOWER(name) LIKE ?", strings.ToLower(prefix)+"%")
	}
	var ingredients []entity.Ingredient
	err := q.Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepository) FindByID(id uint) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.DB.Preload("MeasurementUnit").First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// CountByIDs counts how many of the given ids reference existing ingredients.
func (r *IngredientRepository) CountByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&entity.Ingredient{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}
