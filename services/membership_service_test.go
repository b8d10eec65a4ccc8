package services

import (
	"testing"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMembershipService(db *gorm.DB) *MembershipService {
	return NewMembershipService(
		repository.NewRecipeRepository(db),
		repository.NewMembershipRepository(db),
	)
}

func TestFavoriteToggle(t *testing.T) {
	db := setupDB(t)
	ingredients, tags := seedCatalog(t, db)
	author := createUser(t, db, 1)
	user := createUser(t, db, 2)

	recipe, err := newRecipeService(db).Create(author.ID, validRecipeIn(ingredients, tags))
	require.NoError(t, err)
	svc := newMembershipService(db)

	got, err := svc.AddFavorite(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, got.ID)

	// second identical add fails and the count stays at one
	_, err = svc.AddFavorite(user.ID, recipe.ID)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	var count int64
	db.Model(&entity.Favorite{}).Count(&count)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.RemoveFavorite(user.ID, recipe.ID))
	db.Model(&entity.Favorite{}).Count(&count)
	assert.Zero(t, count)

	// removing again is a conflict
	err = svc.RemoveFavorite(user.ID, recipe.ID)
	require.ErrorAs(t, err, &conflict)
}

func TestCartToggle(t *testing.T) {
	db := setupDB(t)
	ingredients, tags := seedCatalog(t, db)
	author := createUser(t, db, 1)
	user := createUser(t, db, 2)

	recipe, err := newRecipeService(db).Create(author.ID, validRecipeIn(ingredients, tags))
	require.NoError(t, err)
	svc := newMembershipService(db)

	got, err := svc.AddToCart(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, got.ID)

	_, err = svc.AddToCart(user.ID, recipe.ID)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "the recipe is already in shopping cart", conflict.Message)

	require.NoError(t, svc.RemoveFromCart(user.ID, recipe.ID))
	err = svc.RemoveFromCart(user.ID, recipe.ID)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "the recipe is not in shopping cart", conflict.Message)
}

func TestMembershipUnknownRecipe(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, 1)
	svc := newMembershipService(db)

	var conflict *ConflictError
	_, err := svc.AddFavorite(user.ID, 42)
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "recipe with id=42 does not exists", conflict.Message)

	_, err = svc.AddToCart(user.ID, 42)
	require.ErrorAs(t, err, &conflict)
}
