package main

import (
	"log"
	"net/http"
	"os"

	"evbooking/config"
	"evbooking/jobs"
	"evbooking/models"
	"evbooking/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{}, &models.Enrollment{}, &models.TicketType{}, &models.Ticket{},
		&models.Hotel{}, &models.Room{}, &models.Booking{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	config.InitWebSocket(router, m)

	hotelService := routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	jobs.SetHotelCacheWarmer(hotelService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
