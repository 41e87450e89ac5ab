package controllers

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/models"
	"github.com/MuhammadAnus6529/KingsHotel6529/validations"
)

type RoomController struct {
	RoomCollection *mongo.Collection
	Config         *config.Config
}

func NewRoomController(roomCollection *mongo.Collection, cfg *config.Config) *RoomController {
	return &RoomController{RoomCollection: roomCollection, Config: cfg}
}

// GetAllRooms lists the whole catalog, unfiltered.
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	cursor, err := rc.RoomCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer cursor.Close(ctx)

	rooms := []models.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var room models.Room
	if err := rc.RoomCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// CreateRoom accepts either a JSON body or a multipart form carrying an
// image file. Admin only (enforced by the route).
func (rc *RoomController) CreateRoom(c *gin.Context) {
	req, ok := rc.bindRoomRequest(c)
	if !ok {
		return
	}

	room := models.Room{
		ID:            primitive.NewObjectID(),
		RoomNumber:    req.RoomNumber,
		Category:      req.Category,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
		Image:         req.Image,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := rc.RoomCollection.InsertOne(ctx, room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoom is plain field replacement.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	req, ok := rc.bindRoomRequest(c)
	if !ok {
		return
	}

	update := bson.M{
		"room_number":     req.RoomNumber,
		"category":        req.Category,
		"price_per_night": req.PricePerNight,
		"description":     req.Description,
		"updatedAt":       time.Now(),
	}
	if req.Image != "" {
		update["image"] = req.Image
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := rc.RoomCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		return
	}

	var room models.Room
	if err := rc.RoomCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := rc.RoomCollection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
}

// bindRoomRequest binds the room payload from JSON or multipart form and
// stores an uploaded image, if any, under the upload dir with a uuid
// filename. Replies with 400 and returns false on any binding failure.
func (rc *RoomController) bindRoomRequest(c *gin.Context) (*validations.CreateRoomRequest, bool) {
	var req validations.CreateRoomRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return nil, false
		}
		file, err := c.FormFile("image")
		if err == nil {
			filename := uuid.NewString() + filepath.Ext(file.Filename)
			dst := filepath.Join(rc.Config.UploadDir, filename)
			if err := c.SaveUploadedFile(file, dst); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
				return nil, false
			}
			req.Image = "/uploads/" + filename
		}
		return &req, true
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil, false
	}
	return &req, true
}
