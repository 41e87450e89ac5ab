package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/controllers"
)

func AuthRoutes(r *gin.Engine, client *mongo.Client, cfg *config.Config) {
	userCollection := config.GetCollection(client, cfg.Database, "users")
	authController := controllers.NewAuthController(userCollection, cfg)

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.GET("/check-email", authController.CheckEmail)
}
