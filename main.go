package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/lorpaxx/foodgram-project-react/configs"
	"github.com/lorpaxx/foodgram-project-react/routes"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedCatalog(cfg); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cfg)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
