package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/controllers"
	"github.com/MuhammadAnus6529/KingsHotel6529/middlewares"
)

func AdminRoutes(r *gin.Engine, client *mongo.Client, cfg *config.Config) {
	bookingCollection := config.GetCollection(client, cfg.Database, "bookings")
	adminController := controllers.NewAdminController(bookingCollection, cfg)

	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret), middlewares.AdminMiddleware())
	admin.GET("/bookings", adminController.GetAllBookings)
	admin.PATCH("/bookings/:id/status", adminController.SetBookingStatus)
}
