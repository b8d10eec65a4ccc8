package configs

import (
	"fmt"

	"github.com/lorpaxx/foodgram-project-react/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		dialector = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{}, &entity.AuthToken{}, &entity.Subscribe{},
		&entity.MeasurementUnit{}, &entity.Ingredient{}, &entity.Tag{},
		&entity.Recipe{}, &entity.RecipeTag{}, &entity.RecipeIngredientAmount{},
		&entity.Favorite{}, &entity.ShoppingCart{},
	)
}
