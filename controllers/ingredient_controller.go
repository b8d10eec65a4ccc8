package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
)

type IngredientController struct {
	ingredientRepo *repository.IngredientRepository
}

func NewIngredientController(ir *repository.IngredientRepository) *IngredientController {
	return &IngredientController{ingredientRepo: ir}
}

// GET /api/ingredients/?name=<prefix>
func (ctl *IngredientController) List(c *gin.Context) {
	ingredients, err := ctl.ingredientRepo.List(c.Query("name"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	results := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		results = append(results, newIngredientResponse(&ingredients[i]))
	}
	resp.OK(c, results)
}

// GET /api/ingredients/:id/
func (ctl *IngredientController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	ingredient, err := ctl.ingredientRepo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "ingredient not found")
		return
	}
	resp.OK(c, newIngredientResponse(ingredient))
}
