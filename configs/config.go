package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	TokenSecret string
	TokenTTL    time.Duration

	PageSize int

	IngredientsFile string
	TagsFile        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "foodgram.db"),
		Port:            getEnv("PORT", "8000"),
		TokenSecret:     getEnv("TOKEN_SECRET", "changeme"),
		TokenTTL:        time.Duration(30*24) * time.Hour,
		PageSize:        6,
		IngredientsFile: getEnv("INGREDIENTS_FILE", "data/ingredients.csv"),
		TagsFile:        getEnv("TAGS_FILE", "data/tags.csv"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
