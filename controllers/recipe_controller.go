package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/entity"
	"github.com/lorpaxx/foodgram-project-react/pkg/paginate"
	"github.com/lorpaxx/foodgram-project-react/pkg/resp"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/services"
	"github.com/lorpaxx/foodgram-project-react/utils"
)

type RecipeController struct {
	recipes        *services.RecipeService
	memberships    *services.MembershipService
	shoppingList   *services.ShoppingListService
	membershipRepo *repository.MembershipRepository
	subscribeRepo  *repository.SubscribeRepository
	userRepo       *repository.UserRepository
	pageSize       int
}

func NewRecipeController(
	rs *services.RecipeService,
	ms *services.MembershipService,
	sls *services.ShoppingListService,
	mr *repository.MembershipRepository,
	sr *repository.SubscribeRepository,
	ur *repository.UserRepository,
	pageSize int,
) *RecipeController {
	return &RecipeController{
		recipes:        rs,
		memberships:    ms,
		shoppingList:   sls,
		membershipRepo: mr,
		subscribeRepo:  sr,
		userRepo:       ur,
		pageSize:       pageSize,
	}
}

// boolFilter maps "1"/"0" to a three-state filter; anything else is a no-op.
func boolFilter(value string) *bool {
	switch value {
	case "1":
		v := true
		return &v
	case "0":
		v := false
		return &v
	default:
		return nil
	}
}

func recipeFilterFromQuery(c *gin.Context) repository.RecipeFilter {
	f := repository.RecipeFilter{
		TagSlugs: c.QueryArray("tags"),
		UserID:   utils.CurrentUserID(c),
	}
	if id, err := strconv.Atoi(c.Query("author")); err == nil && id > 0 {
		f.AuthorID = uint(id)
	}
	f.IsFavorited = boolFilter(c.Query("is_favorited"))
	f.IsInCart = boolFilter(c.Query("is_in_shopping_cart"))
	return f
}

// GET /api/recipes/
func (ctl *RecipeController) List(c *gin.Context) {
	p := paginate.Parse(c, ctl.pageSize)
	recipes, count, err := ctl.recipes.List(recipeFilterFromQuery(c), p.Offset(), p.Limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	userID := utils.CurrentUserID(c)
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for i := range recipes {
		recipeIDs = append(recipeIDs, recipes[i].ID)
		authorIDs = append(authorIDs, recipes[i].AuthorID)
	}

	favorites, err := ctl.membershipRepo.FavoriteIDSet(userID, recipeIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	inCart, err := ctl.membershipRepo.CartIDSet(userID, recipeIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	subscribed, err := ctl.subscribeRepo.AuthorIDSet(userID, authorIDs)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	results := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		results = append(results, newRecipeResponse(
			r, favorites[r.ID], inCart[r.ID], subscribed[r.AuthorID],
		))
	}
	resp.OK(c, paginate.Envelope(c, count, p, results))
}

func (ctl *RecipeController) respondRecipe(c *gin.Context, recipe *entity.Recipe, status func(*gin.Context, any)) {
	userID := utils.CurrentUserID(c)

	isFavorited, err := ctl.membershipRepo.FavoriteExists(userID, recipe.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	isInCart, err := ctl.membershipRepo.CartExists(userID, recipe.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	isSubscribed, err := ctl.subscribeRepo.Exists(userID, recipe.AuthorID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	status(c, newRecipeResponse(recipe, isFavorited, isInCart, isSubscribed))
}

// GET /api/recipes/:id/
func (ctl *RecipeController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	recipe, err := ctl.recipes.Get(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	ctl.respondRecipe(c, recipe, resp.OK)
}

// POST /api/recipes/
func (ctl *RecipeController) Create(c *gin.Context) {
	var req services.RecipeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	recipe, err := ctl.recipes.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	ctl.respondRecipe(c, recipe, resp.Created)
}

// PATCH /api/recipes/:id/
func (ctl *RecipeController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	var req services.RecipeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}
	recipe, err := ctl.recipes.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	ctl.respondRecipe(c, recipe, resp.OK)
}

// DELETE /api/recipes/:id/
func (ctl *RecipeController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	if err := ctl.recipes.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/recipes/:id/image
func (ctl *RecipeController) Image(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "not found")
		return
	}
	recipe, err := ctl.recipes.Get(uint(id))
	if err != nil || recipe.ImageSize == 0 {
		resp.NotFound(c, "image not found")
		return
	}
	c.Data(200, recipe.ImageType, recipe.Image)
}

// POST /api/recipes/:id/favorite/
func (ctl *RecipeController) AddFavorite(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	recipe, err := ctl.memberships.AddFavorite(utils.CurrentUserID(c), uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, newRecipeShortResponse(recipe))
}

// DELETE /api/recipes/:id/favorite/
func (ctl *RecipeController) RemoveFavorite(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.memberships.RemoveFavorite(utils.CurrentUserID(c), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /api/recipes/:id/shopping_cart/
func (ctl *RecipeController) AddToCart(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	recipe, err := ctl.memberships.AddToCart(utils.CurrentUserID(c), uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, newRecipeShortResponse(recipe))
}

// DELETE /api/recipes/:id/shopping_cart/
func (ctl *RecipeController) RemoveFromCart(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.memberships.RemoveFromCart(utils.CurrentUserID(c), uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/recipes/download_shopping_cart/
func (ctl *RecipeController) DownloadShoppingCart(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	user, err := ctl.userRepo.FindByID(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Type", "application/csv")
	c.Header("Content-Disposition", `attachment; filename="`+user.Username+`.csv"`)
	c.Status(200)
	if err := ctl.shoppingList.WriteCSV(c.Writer, userID); err != nil {
		_ = c.Error(err)
	}
}
