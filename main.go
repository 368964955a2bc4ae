package main

import (
	"fmt"
	"log"
	"os"

	"studiopro-backend/config"
	"studiopro-backend/models"
	"studiopro-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.BillingEntity{},
		&models.Site{},
		&models.POC{},
		&models.Location{},
		&models.ShootType{},
		&models.Shoot{},
		&models.Edit{},
		&models.Coupon{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
