package repository

import (
	"testing"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func boolPtr(v bool) *bool { return &v }

// seeds two authors, two tags and three recipes:
//
//	"borscht"  author1 tags{soup,hot}
//	"okroshka" author1 tags{soup}
//	"steak"    author2 tags{hot}
func seedRecipes(t *testing.T, db *gorm.DB) (author1, author2 *entity.User, recipes []entity.Recipe) {
	t.Helper()

	author1 = &entity.User{Email: "a1@example.com", Username: "a1", Password: "x"}
	author2 = &entity.User{Email: "a2@example.com", Username: "a2", Password: "x"}
	require.NoError(t, db.Create(author1).Error)
	require.NoError(t, db.Create(author2).Error)

	soup := entity.Tag{Name: "Soup", Color: "#0000ff", Slug: "soup"}
	hot := entity.Tag{Name: "Hot", Color: "#ff0000", Slug: "hot"}
	require.NoError(t, db.Create(&soup).Error)
	require.NoError(t, db.Create(&hot).Error)

	rows := []struct {
		name   string
		author uint
		tags   []entity.Tag
	}{
		{"borscht", author1.ID, []entity.Tag{soup, hot}},
		{"okroshka", author1.ID, []entity.Tag{soup}},
		{"steak", author2.ID, []entity.Tag{hot}},
	}
	for _, row := range rows {
		recipe := entity.Recipe{AuthorID: row.author, Name: row.name, Text: "t", CookingTime: 10}
		require.NoError(t, db.Create(&recipe).Error)
		for _, tag := range row.tags {
			require.NoError(t, db.Create(&entity.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}).Error)
		}
		recipes = append(recipes, recipe)
	}
	return author1, author2, recipes
}

func names(recipes []entity.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestRecipeFilterTagsConjoined(t *testing.T) {
	db := setupDB(t)
	_, _, _ = seedRecipes(t, db)
	repo := NewRecipeRepository(db)

	got, count, err := repo.List(RecipeFilter{TagSlugs: []string{"soup"}}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.ElementsMatch(t, []string{"borscht", "okroshka"}, names(got))

	// both slugs must match
	got, count, err = repo.List(RecipeFilter{TagSlugs: []string{"soup", "hot"}}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, []string{"borscht"}, names(got))
}

func TestRecipeFilterAuthor(t *testing.T) {
	db := setupDB(t)
	_, author2, _ := seedRecipes(t, db)
	repo := NewRecipeRepository(db)

	got, count, err := repo.List(RecipeFilter{AuthorID: author2.ID}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, []string{"steak"}, names(got))
}

func TestRecipeFilterFavorited(t *testing.T) {
	db := setupDB(t)
	_, _, recipes := seedRecipes(t, db)
	repo := NewRecipeRepository(db)

	viewer := entity.User{Email: "v@example.com", Username: "v", Password: "x"}
	require.NoError(t, db.Create(&viewer).Error)
	require.NoError(t, db.Create(&entity.Favorite{UserID: viewer.ID, RecipeID: recipes[0].ID}).Error)

	got, _, err := repo.List(RecipeFilter{UserID: viewer.ID, IsFavorited: boolPtr(true)}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"borscht"}, names(got))

	got, _, err = repo.List(RecipeFilter{UserID: viewer.ID, IsFavorited: boolPtr(false)}, 0, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"okroshka", "steak"}, names(got))

	// anonymous users get the unfiltered listing
	got, count, err := repo.List(RecipeFilter{UserID: 0, IsFavorited: boolPtr(true)}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.Len(t, got, 3)
}

func TestRecipeFilterShoppingCart(t *testing.T) {
	db := setupDB(t)
	_, _, recipes := seedRecipes(t, db)
	repo := NewRecipeRepository(db)

	viewer := entity.User{Email: "v@example.com", Username: "v", Password: "x"}
	require.NoError(t, db.Create(&viewer).Error)
	require.NoError(t, db.Create(&entity.ShoppingCart{UserID: viewer.ID, RecipeID: recipes[2].ID}).Error)

	got, _, err := repo.List(RecipeFilter{UserID: viewer.ID, IsInCart: boolPtr(true)}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"steak"}, names(got))
}

func TestRecipeListPagination(t *testing.T) {
	db := setupDB(t)
	seedRecipes(t, db)
	repo := NewRecipeRepository(db)

	got, count, err := repo.List(RecipeFilter{}, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	// ordered by name: borscht, okroshka, steak
	assert.Equal(t, []string{"borscht", "okroshka"}, names(got))

	got, _, err = repo.List(RecipeFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"steak"}, names(got))
}
