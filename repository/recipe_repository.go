package repository

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

type RecipeRepository struct{ DB *gorm.DB }

func NewRecipeRepository(db *gorm.DB) *RecipeRepository { return &RecipeRepository{DB: db} }

// RecipeFilter narrows the recipe listing. TagSlugs are conjoined: a recipe
// must carry every listed slug. IsFavorited/IsInCart are three-state
// (nil = no filter) and only apply with a non-zero UserID.
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	IsFavorited *bool
	IsInCart    *bool
	UserID      uint
}

func (r *RecipeRepository) applyFilter(q *gorm.DB, f RecipeFilter) *gorm.DB {
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	for _, slug := range f.TagSlugs {
		q = q.Where(
			"recipes.id IN (SELECT recipe_id FROM recipe_tags JOIN tags ON tags.id = recipe_tags.tag_id WHERE tags.slug = ?)",
			slug,
		)
	}
	if f.UserID != 0 && f.IsFavorited != nil {
		sub := "recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)"
		if !*f.IsFavorited {
			sub = "recipes.id NOT IN (SELECT recipe_id FROM favorites WHERE user_id = ?)"
		}
		q = q.Where(sub, f.UserID)
	}
	if f.UserID != 0 && f.IsInCart != nil {
		sub := "recipes.id IN (SELECT recipe_id FROM shopping_carts WHERE user_id = ?)"
		if !*f.IsInCart {
			sub = "recipes.id NOT IN (SELECT recipe_id FROM shopping_carts WHERE user_id = ?)"
		}
		q = q.Where(sub, f.UserID)
	}
	return q
}

func (r *RecipeRepository) List(f RecipeFilter, offset, limit int) ([]entity.Recipe, int64, error) {
	var count int64
	if err := r.applyFilter(r.DB.Model(&entity.Recipe{}), f).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []entity.Recipe
	err := r.applyFilter(r.DB.Model(&entity.Recipe{}), f).
		Preload("Author").
		Preload("Tags.Tag").
		Preload("Ingredients.Ingredient.MeasurementUnit").
		Order("name").
		Offset(offset).Limit(limit).
		Find(&recipes).Error
	return recipes, count, err
}

func (r *RecipeRepository) FindByID(id uint) (*entity.Recipe, error) {
	var recipe entity.Recipe
	err := r.DB.
		Preload("Author").
		Preload("Tags.Tag").
		Preload("Ingredients.Ingredient.MeasurementUnit").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListByAuthor returns the author's recipes, newest first, capped by limit
// when limit > 0. Used by the subscription representation.
func (r *RecipeRepository) ListByAuthor(authorID uint, limit int) ([]entity.Recipe, error) {
	q := r.DB.Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []entity.Recipe
	err := q.Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Delete removes the recipe and its join rows in one transaction.
func (r *RecipeRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.RecipeIngredientAmount{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.ShoppingCart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Recipe{}, id).Error
	})
}
