package repository

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/gorm"
)

// MembershipRepository manages the per-user recipe membership relations:
// favorites and the shopping cart.
type MembershipRepository struct{ DB *gorm.DB }

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{DB: db}
}

func (r *MembershipRepository) FavoriteExists(userID, recipeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

func (r *MembershipRepository) AddFavorite(userID, recipeID uint) error {
	return r.DB.Create(&entity.Favorite{UserID: userID, RecipeID: recipeID}).Error
}

func (r *MembershipRepository) RemoveFavorite(userID, recipeID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entity.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *MembershipRepository) CartExists(userID, recipeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.ShoppingCart{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error
	return count > 0, err
}

func (r *MembershipRepository) AddToCart(userID, recipeID uint) error {
	return r.DB.Create(&entity.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error
}

func (r *MembershipRepository) RemoveFromCart(userID, recipeID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entity.ShoppingCart{})
	return res.RowsAffected, res.Error
}

// RecipeIDSet returns which of the given recipe ids are favorited / in the
// cart for the user. One query per relation for whole listing pages.
func (r *MembershipRepository) FavoriteIDSet(userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.idSet(&entity.Favorite{}, userID, recipeIDs)
}

func (r *MembershipRepository) CartIDSet(userID uint, recipeIDs []uint) (map[uint]bool, error) {
	return r.idSet(&entity.ShoppingCart{}, userID, recipeIDs)
}

func (r *MembershipRepository) idSet(model any, userID uint, recipeIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return set, nil
	}
	var ids []uint
	err := r.DB.Model(model).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
