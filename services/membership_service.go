package services

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
)

// MembershipService implements the favorite / shopping-cart toggles: POST
// adds if absent (duplicate -> conflict), DELETE removes if present (absent
// -> conflict).
type MembershipService struct {
	recipeRepo     *repository.RecipeRepository
	membershipRepo *repository.MembershipRepository
}

func NewMembershipService(rr *repository.RecipeRepository, mr *repository.MembershipRepository) *MembershipService {
	return &MembershipService{recipeRepo: rr, membershipRepo: mr}
}

func (s *MembershipService) recipeOrConflict(recipeID uint) (*entity.Recipe, error) {
	exists, err := s.recipeRepo.ExistsByID(recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, Conflictf("recipe with id=%d does not exists", recipeID)
	}
	return s.recipeRepo.FindByID(recipeID)
}

func (s *MembershipService) AddFavorite(userID, recipeID uint) (*entity.Recipe, error) {
	recipe, err := s.recipeOrConflict(recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.membershipRepo.FavoriteExists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflictf("the recipe is already in favorites")
	}
	if err := s.membershipRepo.AddFavorite(userID, recipeID); err != nil {
		// a concurrent add loses to the unique constraint
		if repository.IsUniqueViolation(err) {
			return nil, Conflictf("the recipe is already in favorites")
		}
		return nil, err
	}
	return recipe, nil
}

func (s *MembershipService) RemoveFavorite(userID, recipeID uint) error {
	if _, err := s.recipeOrConflict(recipeID); err != nil {
		return err
	}
	affected, err := s.membershipRepo.RemoveFavorite(userID, recipeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return Conflictf("the recipe is not in favorites")
	}
	return nil
}

func (s *MembershipService) AddToCart(userID, recipeID uint) (*entity.Recipe, error) {
	recipe, err := s.recipeOrConflict(recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.membershipRepo.CartExists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflictf("the recipe is already in shopping cart")
	}
	if err := s.membershipRepo.AddToCart(userID, recipeID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, Conflictf("the recipe is already in shopping cart")
		}
		return nil, err
	}
	return recipe, nil
}

func (s *MembershipService) RemoveFromCart(userID, recipeID uint) error {
	if _, err := s.recipeOrConflict(recipeID); err != nil {
		return err
	}
	affected, err := s.membershipRepo.RemoveFromCart(userID, recipeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return Conflictf("the recipe is not in shopping cart")
	}
	return nil
}
