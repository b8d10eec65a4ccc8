package repository

import "gorm.io/gorm"

// ShoppingListRow is one aggregated line of a user's shopping list.
type ShoppingListRow struct {
	Ingredient      string `json:"ingredient"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int64  `json:"total"`
}

type ShoppingListRepository struct{ DB *gorm.DB }

func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{DB: db}
}

// Aggregate joins the user's cart recipes to their ingredient amounts and
// sums per (ingredient name, unit name). Ordered by ingredient name; callers
// must not rely on a particular order.
func (r *ShoppingListRepository) Aggregate(userID uint) ([]ShoppingListRow, error) {
	var rows []ShoppingListRow
	err := r.DB.Raw(`
		SELECT ingredients.name            AS ingredient,
		       measurement_units.name      AS measurement_unit,
		       SUM(recipe_ingredient_amounts.amount) AS total
		  FROM recipe_ingredient_amounts
		  JOIN shopping_carts    ON shopping_carts.recipe_id = recipe_ingredient_amounts.recipe_id
		  JOIN ingredients       ON ingredients.id = recipe_ingredient_amounts.ingredient_id
		  JOIN measurement_units ON measurement_units.id = ingredients.measurement_unit_id
		 WHERE shopping_carts.user_id = ?
		 GROUP BY ingredients.name, measurement_units.name
		 ORDER BY ingredients.name
	`, userID).Scan(&rows).Error
	return rows, err
}
