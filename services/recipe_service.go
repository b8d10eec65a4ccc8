package services

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/utils"
	"gorm.io/gorm"
)

type RecipeService struct {
	DB             *gorm.DB
	recipeRepo     *repository.RecipeRepository
	tagRepo        *repository.TagRepository
	ingredientRepo *repository.IngredientRepository
}

func NewRecipeService(db *gorm.DB, rr *repository.RecipeRepository, tr *repository.TagRepository, ir *repository.IngredientRepository) *RecipeService {
	return &RecipeService{DB: db, recipeRepo: rr, tagRepo: tr, ingredientRepo: ir}
}

type IngredientAmountIn struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required"`
}

type RecipeIn struct {
	Name        string               `json:"name" binding:"required"`
	Text        string               `json:"text" binding:"required"`
	CookingTime int                  `json:"cooking_time" binding:"required"`
	Image       string               `json:"image"`
	Tags        []uint               `json:"tags" binding:"required"`
	Ingredients []IngredientAmountIn `json:"ingredients" binding:"required"`
}

// validate checks the payload before anything is written: positive
// cooking_time and amounts, no duplicate ids, and every referenced tag and
// ingredient must exist.
func (s *RecipeService) validate(in *RecipeIn) error {
	if in.CookingTime <= 0 {
		return Fieldf("cooking_time", "must be greater than 0")
	}
	if len(in.Tags) == 0 {
		return Fieldf("tags", "this field is required")
	}
	if len(in.Ingredients) == 0 {
		return Fieldf("ingredients", "this field is required")
	}

	seenTags := make(map[uint]bool, len(in.Tags))
	for _, id := range in.Tags {
		if seenTags[id] {
			return Fieldf("tags", "duplicate tag id=%d", id)
		}
		seenTags[id] = true
	}
	if count, err := s.tagRepo.CountByIDs(in.Tags); err != nil {
		return err
	} else if count != int64(len(in.Tags)) {
		return Fieldf("tags", "tag does not exist")
	}

	seenIngredients := make(map[uint]bool, len(in.Ingredients))
	ids := make([]uint, 0, len(in.Ingredients))
	for _, row := range in.Ingredients {
		if row.Amount <= 0 {
			return Fieldf("ingredients", "amount must be greater than 0")
		}
		if seenIngredients[row.ID] {
			return Fieldf("ingredients", "duplicate ingredient id=%d", row.ID)
		}
		seenIngredients[row.ID] = true
		ids = append(ids, row.ID)
	}
	if count, err := s.ingredientRepo.CountByIDs(ids); err != nil {
		return err
	} else if count != int64(len(ids)) {
		return Fieldf("ingredients", "ingredient does not exist")
	}

	return nil
}

func joinRows(recipeID uint, in *RecipeIn) ([]entity.RecipeTag, []entity.RecipeIngredientAmount) {
	tags := make([]entity.RecipeTag, 0, len(in.Tags))
	for _, id := range in.Tags {
		tags = append(tags, entity.RecipeTag{RecipeID: recipeID, TagID: id})
	}
	ingredients := make([]entity.RecipeIngredientAmount, 0, len(in.Ingredients))
	for _, row := range in.Ingredients {
		ingredients = append(ingredients, entity.RecipeIngredientAmount{
			RecipeID: recipeID, IngredientID: row.ID, Amount: row.Amount,
		})
	}
	return tags, ingredients
}

// Create inserts the recipe and its tag/ingredient join rows atomically.
func (s *RecipeService) Create(authorID uint, in *RecipeIn) (*entity.Recipe, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if in.Image == "" {
		return nil, Fieldf("image", "this field is required")
	}
	data, mimeType, err := utils.DecodeBase64Image(in.Image)
	if err != nil {
		return nil, Fieldf("image", "%s", err.Error())
	}

	recipe := &entity.Recipe{
		AuthorID:    authorID,
		Name:        in.Name,
		Text:        in.Text,
		CookingTime: in.CookingTime,
		Image:       data,
		ImageType:   mimeType,
		ImageSize:   int64(len(data)),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		tags, ingredients := joinRows(recipe.ID, in)
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}
		return tx.Create(&ingredients).Error
	})
	if err != nil {
		return nil, err
	}
	return s.recipeRepo.FindByID(recipe.ID)
}

// Update rewrites the recipe's scalar fields and fully replaces both join
// sets: all prior rows are deleted and the complete new sets reinserted,
// all inside one transaction. Only the author may update.
func (s *RecipeService) Update(userID, recipeID uint, in *RecipeIn) (*entity.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, ErrNotOwner
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name":         in.Name,
		"text":         in.Text,
		"cooking_time": in.CookingTime,
	}
	if in.Image != "" {
		data, mimeType, err := utils.DecodeBase64Image(in.Image)
		if err != nil {
			return nil, Fieldf("image", "%s", err.Error())
		}
		fields["image"] = data
		fields["image_type"] = mimeType
		fields["image_size"] = int64(len(data))
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Recipe{}).Where("id = ?", recipeID).Updates(fields).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entity.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entity.RecipeIngredientAmount{}).Error; err != nil {
			return err
		}
		tags, ingredients := joinRows(recipeID, in)
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}
		return tx.Create(&ingredients).Error
	})
	if err != nil {
		return nil, err
	}
	return s.recipeRepo.FindByID(recipeID)
}

// Delete removes the recipe; only the author may delete.
func (s *RecipeService) Delete(userID, recipeID uint) error {
	recipe, err := s.recipeRepo.FindByID(recipeID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return ErrNotOwner
	}
	return s.recipeRepo.Delete(recipeID)
}

func (s *RecipeService) Get(recipeID uint) (*entity.Recipe, error) {
	return s.recipeRepo.FindByID(recipeID)
}

func (s *RecipeService) List(f repository.RecipeFilter, offset, limit int) ([]entity.Recipe, int64, error) {
	return s.recipeRepo.List(f, offset, limit)
}
