package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"kotibus/config"
	_ "kotibus/docs"
	"kotibus/middleware"
	"kotibus/routes"
	"kotibus/storage"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	dataDir := config.AppConfig.DataDir
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	catalog, err := storage.NewCatalogStore(filepath.Join(dataDir, config.AppConfig.ProductsFile))
	if err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	carts, err := storage.NewFileCartStore(filepath.Join(dataDir, "carts.json"))
	if err != nil {
		log.Fatalf("Failed to open cart store: %v", err)
	}

	users, err := storage.NewFileUserStore(filepath.Join(dataDir, "users.json"))
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}

	orders := storage.NewFileOrderStore(filepath.Join(dataDir, "orders.json"))

	log.Printf("Catalog loaded: %d products", len(catalog.All()))

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Stores{
		Catalog: catalog,
		Carts:   carts,
		Users:   users,
		Orders:  orders,
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
