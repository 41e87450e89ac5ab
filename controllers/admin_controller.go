package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/models"
	"github.com/MuhammadAnus6529/KingsHotel6529/utils"
	"github.com/MuhammadAnus6529/KingsHotel6529/validations"
)

// AdminController serves the admin-only booking views and the status
// override escape hatch.
type AdminController struct {
	BookingCollection *mongo.Collection
	Config            *config.Config
}

func NewAdminController(bookingColl *mongo.Collection, cfg *config.Config) *AdminController {
	return &AdminController{BookingCollection: bookingColl, Config: cfg}
}

type adminBookingRow struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	RoomID    primitive.ObjectID `bson:"room_id"`
	StartTime time.Time          `bson:"start_time"`
	EndTime   time.Time          `bson:"end_time"`
	Status    string             `bson:"status"`
	User      models.User        `bson:"user"`
	Room      models.Room        `bson:"room"`
}

// GetAllBookings lists every booking joined with the customer {name,
// email} and the room {category, price_per_night}, paginated.
func (ac *AdminController) GetAllBookings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	p := utils.GetPagination(c)

	total, err := ac.BookingCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$skip", Value: int64(p.Skip)}},
		{{Key: "$limit", Value: int64(p.Limit)}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "rooms",
			"localField":   "room_id",
			"foreignField": "_id",
			"as":           "room",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$room", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := ac.BookingCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer cursor.Close(ctx)

	var rows []adminBookingRow
	if err := cursor.All(ctx, &rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	bookings := []gin.H{}
	for _, b := range rows {
		bookings = append(bookings, gin.H{
			"id":         b.ID.Hex(),
			"start_time": b.StartTime,
			"end_time":   b.EndTime,
			"status":     b.Status,
			"user": gin.H{
				"id":    b.UserID.Hex(),
				"name":  b.User.Name,
				"email": b.User.Email,
			},
			"room": gin.H{
				"id":              b.RoomID.Hex(),
				"category":        b.Room.Category,
				"price_per_night": b.Room.PricePerNight,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     p.Page,
		"limit":    p.Limit,
		"total":    total,
		"bookings": bookings,
	})
}

// SetBookingStatus is the admin override: any status may be set from any
// prior status, no transition table. The body is still enum-checked.
func (ac *AdminController) SetBookingStatus(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return
	}

	var req validations.SetBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := ac.BookingCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}

	var booking models.Booking
	if err := ac.BookingCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
