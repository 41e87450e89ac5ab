package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/controllers"
	"github.com/MuhammadAnus6529/KingsHotel6529/middlewares"
)

func RoomRoutes(r *gin.Engine, client *mongo.Client, cfg *config.Config) {
	roomCollection := config.GetCollection(client, cfg.Database, "rooms")
	roomController := controllers.NewRoomController(roomCollection, cfg)

	r.GET("/rooms", roomController.GetAllRooms)
	r.GET("/rooms/:id", roomController.GetRoomByID)

	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret), middlewares.AdminMiddleware())
	admin.POST("/rooms", roomController.CreateRoom)
	admin.PUT("/rooms/:id", roomController.UpdateRoom)
	admin.DELETE("/rooms/:id", roomController.DeleteRoom)
}
