package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/configs"
	"github.com/lorpaxx/foodgram-project-react/controllers"
	"github.com/lorpaxx/foodgram-project-react/middlewares"
	"github.com/lorpaxx/foodgram-project-react/repository"
	"github.com/lorpaxx/foodgram-project-react/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	subscribeRepo := repository.NewSubscribeRepository(db)
	shoppingListRepo := repository.NewShoppingListRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, tokenRepo, cfg.TokenSecret, cfg.TokenTTL)
	userSvc := services.NewUserService(userRepo)
	recipeSvc := services.NewRecipeService(db, recipeRepo, tagRepo, ingredientRepo)
	membershipSvc := services.NewMembershipService(recipeRepo, membershipRepo)
	subscriptionSvc := services.NewSubscriptionService(userRepo, subscribeRepo)
	shoppingListSvc := services.NewShoppingListService(shoppingListRepo)

	// Controllers
	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc, subscribeRepo, cfg.PageSize)
	tagCtl := controllers.NewTagController(tagRepo)
	ingredientCtl := controllers.NewIngredientController(ingredientRepo)
	recipeCtl := controllers.NewRecipeController(
		recipeSvc, membershipSvc, shoppingListSvc,
		membershipRepo, subscribeRepo, userRepo, cfg.PageSize,
	)
	subscriptionCtl := controllers.NewSubscriptionController(subscriptionSvc, recipeRepo, cfg.PageSize)

	required := middlewares.AuthRequired(db, cfg.TokenSecret)
	optional := middlewares.AuthOptional(db, cfg.TokenSecret)

	api := r.Group("/api")

	// Auth
	api.POST("/auth/token/login", authCtl.Login)
	api.POST("/auth/token/logout", required, authCtl.Logout)

	// Catalog (public)
	api.GET("/tags", tagCtl.List)
	api.GET("/tags/:id", tagCtl.Get)
	api.GET("/ingredients", ingredientCtl.List)
	api.GET("/ingredients/:id", ingredientCtl.Get)

	// Users & subscriptions
	users := api.Group("/users")
	{
		users.GET("", optional, userCtl.List)
		users.POST("", userCtl.Create)
		users.GET("/me", required, userCtl.Me)
		users.POST("/set_password", required, userCtl.SetPassword)
		users.GET("/subscriptions", required, subscriptionCtl.Subscriptions)
		users.GET("/:id", optional, userCtl.Get)
		users.POST("/:id/subscribe", required, subscriptionCtl.Subscribe)
		users.DELETE("/:id/subscribe", required, subscriptionCtl.Unsubscribe)
	}

	// Recipes
	recipes := api.Group("/recipes")
	{
		recipes.GET("", optional, recipeCtl.List)
		recipes.POST("", required, recipeCtl.Create)
		recipes.GET("/download_shopping_cart", required, recipeCtl.DownloadShoppingCart)
		recipes.GET("/:id", optional, recipeCtl.Get)
		recipes.PATCH("/:id", required, recipeCtl.Update)
		recipes.DELETE("/:id", required, recipeCtl.Delete)
		recipes.GET("/:id/image", recipeCtl.Image)
		recipes.POST("/:id/favorite", required, recipeCtl.AddFavorite)
		recipes.DELETE("/:id/favorite", required, recipeCtl.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", required, recipeCtl.AddToCart)
		recipes.DELETE("/:id/shopping_cart", required, recipeCtl.RemoveFromCart)
	}
}
