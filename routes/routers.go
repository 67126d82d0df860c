package routes

import (
	"evbooking/controllers"
	middlewares "evbooking/middleware"
	"evbooking/services"
	"evbooking/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *services.HotelService {

	baseLogger := logger.NewDefaultLogger(logger.InfoLevel)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Melody: m,
		Logger: baseLogger.Named("booking"),
	})
	hotelService := services.NewHotelService(services.HotelServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: baseLogger.Named("hotel"),
	})

	bookingController := controllers.NewBookingController(bookingService)
	hotelController := controllers.NewHotelController(hotelService)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/booking", middlewares.AuthMiddleware(), bookingController.GetBooking)
	v1.PUT("/booking/:bookingId", middlewares.AuthMiddleware(), bookingController.UpdateBooking)

	v1.GET("/hotels", middlewares.AuthMiddleware(), hotelController.GetHotels)
	v1.GET("/hotels/:hotelId", middlewares.AuthMiddleware(), hotelController.GetHotelDetail)

	return hotelService
}
