package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/controllers"
	"github.com/MuhammadAnus6529/KingsHotel6529/middlewares"
)

func BookingRoutes(r *gin.Engine, client *mongo.Client, cfg *config.Config) {
	bookingCollection := config.GetCollection(client, cfg.Database, "bookings")
	roomCollection := config.GetCollection(client, cfg.Database, "rooms")
	bookingController := controllers.NewBookingController(bookingCollection, roomCollection, client, cfg)

	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	auth.POST("/bookings", bookingController.CreateBooking)
	auth.GET("/my-bookings", bookingController.GetMyBookings)
	auth.PATCH("/bookings/:id/cancel", bookingController.CancelBooking)
	auth.PATCH("/bookings/:id/complete", bookingController.CompleteBooking)
}
