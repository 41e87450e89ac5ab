package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadAnus6529/KingsHotel6529/config"
	"github.com/MuhammadAnus6529/KingsHotel6529/middlewares"
	"github.com/MuhammadAnus6529/KingsHotel6529/models"
	"github.com/MuhammadAnus6529/KingsHotel6529/utils"
	"github.com/MuhammadAnus6529/KingsHotel6529/validations"
)

type BookingController struct {
	BookingCollection *mongo.Collection
	RoomCollection    *mongo.Collection
	Client            *mongo.Client
	Config            *config.Config
}

func NewBookingController(bookingColl, roomColl *mongo.Collection, client *mongo.Client, cfg *config.Config) *BookingController {
	return &BookingController{
		BookingCollection: bookingColl,
		RoomCollection:    roomColl,
		Client:            client,
		Config:            cfg,
	}
}

// RoomConflictFilter matches any booking that holds the room for an
// interval overlapping [start, end). Half-open: a booking ending exactly
// at start, or starting exactly at end, does not match.
func RoomConflictFilter(roomID primitive.ObjectID, start, end time.Time) bson.M {
	return bson.M{
		"room_id":    roomID,
		"status":     bson.M{"$in": models.ActiveStatuses},
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
}

// UserConflictFilter matches any active booking the user holds, on any
// room, overlapping [start, end). Used by the double-booking guard.
func UserConflictFilter(userID primitive.ObjectID, start, end time.Time) bson.M {
	return bson.M{
		"user_id":    userID,
		"status":     bson.M{"$in": models.ActiveStatuses},
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
}

// SweepFilter matches Confirmed bookings whose stay has elapsed. scope
// narrows the sweep (e.g. to one user); pass nil to sweep everything.
func SweepFilter(scope bson.M, now time.Time) bson.M {
	filter := bson.M{
		"status":   models.StatusConfirmed,
		"end_time": bson.M{"$lt": now},
	}
	for k, v := range scope {
		filter[k] = v
	}
	return filter
}

// CreateBooking reserves a room for the authenticated user.
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body validations.CreateBookingRequest true "Booking request"
// @Success 201 {object} models.Booking
// @Failure 400 {object} map[string]string
// @Router /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req validations.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !req.StartTime.Before(req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "start_time must be before end_time"})
		return
	}

	userID := c.MustGet(middlewares.ContextUserID).(primitive.ObjectID)

	roomID, err := primitive.ObjectIDFromHex(req.RoomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid room id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := bc.RoomCollection.FindOne(ctx, bson.M{"_id": roomID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	booking := models.Booking{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		RoomID:    roomID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.StatusConfirmed,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if bc.Config.UseTransactions {
		err = bc.insertBookingTx(ctx, &booking)
	} else {
		err = bc.insertBookingChecked(ctx, &booking)
	}
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRoomAlreadyBooked), errors.Is(err, models.ErrUserAlreadyBooked):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// insertBookingChecked runs the conflict checks then the insert. Outside
// a transaction these are two unsynchronized operations; the transaction
// variant below exists to close that window.
func (bc *BookingController) insertBookingChecked(ctx context.Context, booking *models.Booking) error {
	count, err := bc.BookingCollection.CountDocuments(ctx, RoomConflictFilter(booking.RoomID, booking.StartTime, booking.EndTime))
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrRoomAlreadyBooked
	}

	if bc.Config.UserDoubleBookingGuard {
		count, err = bc.BookingCollection.CountDocuments(ctx, UserConflictFilter(booking.UserID, booking.StartTime, booking.EndTime))
		if err != nil {
			return err
		}
		if count > 0 {
			return models.ErrUserAlreadyBooked
		}
	}

	_, err = bc.BookingCollection.InsertOne(ctx, booking)
	return err
}

// insertBookingTx re-runs the conflict check and the insert inside a
// session transaction so two concurrent requests for overlapping dates
// cannot both commit.
func (bc *BookingController) insertBookingTx(ctx context.Context, booking *models.Booking) error {
	session, err := bc.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, bc.insertBookingChecked(sc, booking)
	})
	return err
}

// SweepElapsed transitions every Confirmed booking whose end_time has
// passed to Completed, across all users. Idempotent: re-running it, or
// racing it against itself or the per-user sweep, changes nothing.
func (bc *BookingController) SweepElapsed(ctx context.Context) (int64, error) {
	result, err := bc.BookingCollection.UpdateMany(ctx,
		SweepFilter(nil, time.Now()),
		bson.M{"$set": bson.M{"status": models.StatusCompleted, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

type bookingWithRoom struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	RoomID    primitive.ObjectID `bson:"room_id"`
	StartTime time.Time          `bson:"start_time"`
	EndTime   time.Time          `bson:"end_time"`
	Status    string             `bson:"status"`
	Room      models.Room        `bson:"room"`
}

// GetMyBookings lists the caller's bookings joined with the room for
// display. Elapsed Confirmed bookings are swept to Completed first, so a
// stay that ended before this request always shows as Completed.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID := c.MustGet(middlewares.ContextUserID).(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	_, err := bc.BookingCollection.UpdateMany(ctx,
		SweepFilter(bson.M{"user_id": userID}, time.Now()),
		bson.M{"$set": bson.M{"status": models.StatusCompleted, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "rooms",
			"localField":   "room_id",
			"foreignField": "_id",
			"as":           "room",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$room", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := bc.BookingCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer cursor.Close(ctx)

	var rows []bookingWithRoom
	if err := cursor.All(ctx, &rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	response := []gin.H{}
	for _, b := range rows {
		response = append(response, gin.H{
			"id":         b.ID.Hex(),
			"room_id":    b.RoomID.Hex(),
			"start_time": b.StartTime,
			"end_time":   b.EndTime,
			"status":     b.Status,
			"room": gin.H{
				"category":        b.Room.Category,
				"price_per_night": b.Room.PricePerNight,
			},
			"total_price": utils.TotalCharge(b.StartTime, b.EndTime, b.Room.PricePerNight),
		})
	}

	c.JSON(http.StatusOK, response)
}

// CancelBooking moves a Confirmed booking to Cancelled. Only the owner
// (or an admin) may cancel, and a booking that is already Cancelled,
// Completed, or anything but Confirmed cannot be cancelled again.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	booking, ok := bc.loadOwnedBooking(c)
	if !ok {
		return
	}

	if !models.CanCancel(booking.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrCannotCancel.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// Status guard in the filter so a concurrent transition loses cleanly.
	result, err := bc.BookingCollection.UpdateOne(ctx,
		bson.M{"_id": booking.ID, "status": models.StatusConfirmed},
		bson.M{"$set": bson.M{"status": models.StatusCancelled, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.ModifiedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrCannotCancel.Error()})
		return
	}

	booking.Status = models.StatusCancelled
	c.JSON(http.StatusOK, booking)
}

// CompleteBooking moves a Confirmed booking whose stay elapsed to
// Completed. Completing an already Completed booking is a no-op: the
// client-side re-check and the server sweep race against each other and
// both must converge on the same terminal state.
func (bc *BookingController) CompleteBooking(c *gin.Context) {
	booking, ok := bc.loadOwnedBooking(c)
	if !ok {
		return
	}

	if booking.Status == models.StatusCompleted {
		c.JSON(http.StatusOK, booking)
		return
	}
	if !models.CanComplete(booking.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrCannotComplete.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := bc.BookingCollection.UpdateOne(ctx,
		bson.M{"_id": booking.ID, "status": models.StatusConfirmed},
		bson.M{"$set": bson.M{"status": models.StatusCompleted, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.ModifiedCount == 0 {
		// The sweep got there first; report the terminal state.
		if err := bc.BookingCollection.FindOne(ctx, bson.M{"_id": booking.ID}).Decode(booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if booking.Status != models.StatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrCannotComplete.Error()})
			return
		}
	} else {
		booking.Status = models.StatusCompleted
	}

	c.JSON(http.StatusOK, booking)
}

// loadOwnedBooking fetches the booking from the path id and enforces the
// ownership rule: non-admin callers may only touch their own bookings.
func (bc *BookingController) loadOwnedBooking(c *gin.Context) (*models.Booking, bool) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return nil, false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := bc.BookingCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return nil, false
	}

	userID := c.MustGet(middlewares.ContextUserID).(primitive.ObjectID)
	role := c.GetString(middlewares.ContextRole)
	if booking.UserID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return nil, false
	}

	return &booking, true
}
