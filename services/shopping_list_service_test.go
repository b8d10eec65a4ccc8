package services

import (
	"bytes"
	"testing"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListAggregation(t *testing.T) {
	db := setupDB(t)
	ingredients, tags := seedCatalog(t, db)
	author := createUser(t, db, 1)
	user := createUser(t, db, 2)
	recipeSvc := newRecipeService(db)

	// two recipes sharing "salt"
	first := validRecipeIn(ingredients, tags) // salt 5, flour 200
	r1, err := recipeSvc.Create(author.ID, first)
	require.NoError(t, err)

	second := validRecipeIn(ingredients, tags)
	second.Name = "Soup"
	second.Ingredients = []IngredientAmountIn{{ID: ingredients[0].ID, Amount: 7}} // salt 7
	r2, err := recipeSvc.Create(author.ID, second)
	require.NoError(t, err)

	require.NoError(t, db.Create(&entity.ShoppingCart{UserID: user.ID, RecipeID: r1.ID}).Error)
	require.NoError(t, db.Create(&entity.ShoppingCart{UserID: user.ID, RecipeID: r2.ID}).Error)

	svc := NewShoppingListService(repository.NewShoppingListRepository(db))
	rows, err := svc.Rows(user.ID)
	require.NoError(t, err)

	// salt summed into a single row, flour kept separate
	require.Len(t, rows, 2)
	byName := map[string]repository.ShoppingListRow{}
	for _, row := range rows {
		byName[row.Ingredient] = row
	}
	assert.EqualValues(t, 12, byName["salt"].Total)
	assert.Equal(t, "g", byName["salt"].MeasurementUnit)
	assert.EqualValues(t, 200, byName["flour"].Total)
}

func TestShoppingListCSV(t *testing.T) {
	db := setupDB(t)
	ingredients, tags := seedCatalog(t, db)
	author := createUser(t, db, 1)
	user := createUser(t, db, 2)

	r1, err := newRecipeService(db).Create(author.ID, validRecipeIn(ingredients, tags))
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.ShoppingCart{UserID: user.ID, RecipeID: r1.ID}).Error)

	svc := NewShoppingListService(repository.NewShoppingListRepository(db))
	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf, user.ID))

	out := buf.String()
	assert.Contains(t, out, "ingredient;measurement_unit;total\n")
	assert.Contains(t, out, "salt;g;5\n")
	assert.Contains(t, out, "flour;g;200\n")
}

func TestShoppingListEmptyCart(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, 1)

	svc := NewShoppingListService(repository.NewShoppingListRepository(db))
	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf, user.ID))
	assert.Equal(t, "ingredient;measurement_unit;total\n", buf.String())
}
