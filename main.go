package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"pizza-delivery-shop/config"
	"pizza-delivery-shop/database"
	"pizza-delivery-shop/models"
	"pizza-delivery-shop/router"
	"pizza-delivery-shop/services"
	"pizza-delivery-shop/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Printf("Failed to seed sample data: %v", err)
		}
	}

	shop := config.LoadShopConfig()

	var cache *services.CatalogCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache, err = services.NewCatalogCache(addr)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to connect to redis: %v", err)
		}
		utils.InfoLogger.Printf("Catalog cache enabled (%s)", addr)
	}

	var mailer services.OrderMailer
	if mailCfg := config.LoadMailConfig(); mailCfg.Enabled() {
		mailer = services.NewSMTPMailer(mailCfg, shop)
		utils.InfoLogger.Printf("Order confirmation email enabled (%s)", mailCfg.Host)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db, cache, mailer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("%s listening on port %s", shop.ShopName, port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Pricing{},
		&models.DeliveryArea{},
		&models.Order{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
