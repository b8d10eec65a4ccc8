package services

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.AuthToken{}, &entity.Subscribe{},
		&entity.MeasurementUnit{}, &entity.Ingredient{}, &entity.Tag{},
		&entity.Recipe{}, &entity.RecipeTag{}, &entity.RecipeIngredientAmount{},
		&entity.Favorite{}, &entity.ShoppingCart{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, n int) *entity.User {
	t.Helper()
	user := &entity.User{
		Email:     fmt.Sprintf("user%d@example.com", n),
		Username:  fmt.Sprintf("user%d", n),
		FirstName: "Test",
		LastName:  "User",
		Password:  "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedCatalog creates one unit ("g"), three ingredients and two tags.
func seedCatalog(t *testing.T, db *gorm.DB) ([]entity.Ingredient, []entity.Tag) {
	t.Helper()
	unit := entity.MeasurementUnit{Name: "g"}
	require.NoError(t, db.Create(&unit).Error)

	ingredients := []entity.Ingredient{
		{Name: "salt", MeasurementUnitID: unit.ID},
		{Name: "sugar", MeasurementUnitID: unit.ID},
		{Name: "flour", MeasurementUnitID: unit.ID},
	}
	require.NoError(t, db.Create(&ingredients).Error)

	tags := []entity.Tag{
		{Name: "Breakfast", Color: "#111111", Slug: "breakfast"},
		{Name: "Dinner", Color: "#222222", Slug: "dinner"},
	}
	require.NoError(t, db.Create(&tags).Error)
	return ingredients, tags
}

func testImage() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))
}

func newRecipeService(db *gorm.DB) *RecipeService {
	return NewRecipeService(
		db,
		repository.NewRecipeRepository(db),
		repository.NewTagRepository(db),
		repository.NewIngredientRepository(db),
	)
}

func validRecipeIn(ingredients []entity.Ingredient, tags []entity.Tag) *RecipeIn {
	return &RecipeIn{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
		Image:       testImage(),
		Tags:        []uint{tags[0].ID},
		Ingredients: []IngredientAmountIn{
			{ID: ingredients[0].ID, Amount: 5},
			{ID: ingredients[2].ID, Amount: 200},
		},
	}
}
