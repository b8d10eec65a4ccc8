package controllers

import (
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/utils"
)

type UserResponse struct {
	Email        string `json:"email"`
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func newUserResponse(u *entity.User, isSubscribed bool) UserResponse {
	return UserResponse{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

type IngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func newIngredientResponse(i *entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              i.ID,
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit.Name,
	}
}

// RecipeIngredientResponse is an ingredient as it appears inside a recipe:
// catalog fields plus the amount from the join row.
type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeResponse struct {
	ID               uint                       `json:"id"`
	Tags             []entity.Tag               `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeShortResponse is the shortened representation returned by the
// membership toggles and inside subscription entries.
type RecipeShortResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func newRecipeShortResponse(r *entity.Recipe) RecipeShortResponse {
	return RecipeShortResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       utils.RecipeImageURL(r.ID, r.ImageSize),
		CookingTime: r.CookingTime,
	}
}

// newRecipeResponse assumes Tags.Tag, Ingredients.Ingredient.MeasurementUnit
// and Author are preloaded.
func newRecipeResponse(r *entity.Recipe, isFavorited, isInCart, isSubscribed bool) RecipeResponse {
	tags := make([]entity.Tag, 0, len(r.Tags))
	for _, rt := range r.Tags {
		tags = append(tags, rt.Tag)
	}
	ingredients := make([]RecipeIngredientResponse, 0, len(r.Ingredients))
	for _, ria := range r.Ingredients {
		ingredients = append(ingredients, RecipeIngredientResponse{
			ID:              ria.Ingredient.ID,
			Name:            ria.Ingredient.Name,
			MeasurementUnit: ria.Ingredient.MeasurementUnit.Name,
			Amount:          ria.Amount,
		})
	}

	return RecipeResponse{
		ID:               r.ID,
		Tags:             tags,
		Author:           newUserResponse(&r.Author, isSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             r.Name,
		Image:            utils.RecipeImageURL(r.ID, r.ImageSize),
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
}

// SubscriptionResponse is an author with a capped list of their recipes.
type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipeShortResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

func newSubscriptionResponse(author *entity.User, recipes []entity.Recipe, total int64) SubscriptionResponse {
	short := make([]RecipeShortResponse, 0, len(recipes))
	for i := range recipes {
		short = append(short, newRecipeShortResponse(&recipes[i]))
	}
	return SubscriptionResponse{
		UserResponse: newUserResponse(author, true),
		Recipes:      short,
		RecipesCount: total,
	}
}
