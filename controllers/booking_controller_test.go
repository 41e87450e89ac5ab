package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MuhammadAnus6529/KingsHotel6529/middlewares"
	"github.com/MuhammadAnus6529/KingsHotel6529/models"
)

func asUser(userID primitive.ObjectID, role string) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middlewares.ContextUserID, userID)
		c.Set(middlewares.ContextRole, role)
	}
}

func roomDoc(roomID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: roomID},
		{Key: "room_number", Value: "STE-1"},
		{Key: "category", Value: models.CategorySuite},
		{Key: "price_per_night", Value: 500.0},
	}
}

func bookingDoc(id, userID, roomID primitive.ObjectID, status string, start, end time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: userID},
		{Key: "room_id", Value: roomID},
		{Key: "start_time", Value: primitive.NewDateTimeFromTime(start)},
		{Key: "end_time", Value: primitive.NewDateTimeFromTime(end)},
		{Key: "status", Value: status},
	}
}

func countResponse(n int32) bson.D {
	if n == 0 {
		return mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch)
	}
	return mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch,
		bson.D{{Key: "n", Value: n}})
}

func createBookingBody(roomID primitive.ObjectID, start, end string) string {
	return fmt.Sprintf(`{"room_id":%q,"start_time":"%sT00:00:00Z","end_time":"%sT00:00:00Z"}`,
		roomID.Hex(), start, end)
}

func TestCreateBooking_RoomConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("overlapping stay on the same room is rejected", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		roomID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.rooms", mtest.FirstBatch, roomDoc(roomID)),
			countResponse(1), // room conflict found
		)

		w := performJSON(bc.CreateBooking, http.MethodPost, "/bookings",
			createBookingBody(roomID, "2030-01-02", "2030-01-04"),
			asUser(primitive.NewObjectID(), "customer"))

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "Room already booked")
	})
}

func TestCreateBooking_UserDoubleBookingGuard(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("overlapping stay on another room is rejected for the same user", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		roomID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.rooms", mtest.FirstBatch, roomDoc(roomID)),
			countResponse(0), // no room conflict
			countResponse(1), // but the user already holds a booking
		)

		w := performJSON(bc.CreateBooking, http.MethodPost, "/bookings",
			createBookingBody(roomID, "2030-01-02", "2030-01-04"),
			asUser(primitive.NewObjectID(), "customer"))

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "You already have a booking")
	})
}

func TestCreateBooking_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("free range books with status Confirmed", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		roomID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.rooms", mtest.FirstBatch, roomDoc(roomID)),
			countResponse(0),
			countResponse(0),
			mtest.CreateSuccessResponse(), // insert
		)

		w := performJSON(bc.CreateBooking, http.MethodPost, "/bookings",
			createBookingBody(roomID, "2030-01-03", "2030-01-05"),
			asUser(userID, "customer"))

		require.Equal(mt, http.StatusCreated, w.Code)

		var booking models.Booking
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &booking))
		assert.Equal(mt, models.StatusConfirmed, booking.Status)
		assert.Equal(mt, userID, booking.UserID)
		assert.Equal(mt, roomID, booking.RoomID)
	})
}

func TestCreateBooking_StartAfterEnd(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inverted range is rejected before any query", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())

		w := performJSON(bc.CreateBooking, http.MethodPost, "/bookings",
			createBookingBody(primitive.NewObjectID(), "2030-01-05", "2030-01-03"),
			asUser(primitive.NewObjectID(), "customer"))

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "start_time must be before end_time")
	})
}

func TestCancelBooking_OK(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("owner cancels a Confirmed booking", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		bookingID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch,
				bookingDoc(bookingID, userID, primitive.NewObjectID(), models.StatusConfirmed,
					time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 3))),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		w := performJSON(bc.CancelBooking, http.MethodPatch, "/bookings/"+bookingID.Hex()+"/cancel", "",
			func(c *gin.Context) {
				asUser(userID, "customer")(c)
				c.Params = gin.Params{{Key: "id", Value: bookingID.Hex()}}
			})

		require.Equal(mt, http.StatusOK, w.Code)

		var booking models.Booking
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &booking))
		assert.Equal(mt, models.StatusCancelled, booking.Status)
	})
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second cancel fails instead of silently succeeding", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		bookingID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch,
				bookingDoc(bookingID, userID, primitive.NewObjectID(), models.StatusCancelled,
					time.Now(), time.Now().AddDate(0, 0, 2))),
		)

		w := performJSON(bc.CancelBooking, http.MethodPatch, "/bookings/"+bookingID.Hex()+"/cancel", "",
			func(c *gin.Context) {
				asUser(userID, "customer")(c)
				c.Params = gin.Params{{Key: "id", Value: bookingID.Hex()}}
			})

		assert.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Contains(mt, w.Body.String(), "Cannot cancel")
	})
}

func TestCancelBooking_NotOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("another customer may not cancel by id", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		bookingID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch,
				bookingDoc(bookingID, primitive.NewObjectID(), primitive.NewObjectID(),
					models.StatusConfirmed, time.Now(), time.Now().AddDate(0, 0, 2))),
		)

		w := performJSON(bc.CancelBooking, http.MethodPatch, "/bookings/"+bookingID.Hex()+"/cancel", "",
			func(c *gin.Context) {
				asUser(primitive.NewObjectID(), "customer")(c)
				c.Params = gin.Params{{Key: "id", Value: bookingID.Hex()}}
			})

		assert.Equal(mt, http.StatusForbidden, w.Code)
	})
}

func TestCompleteBooking_Idempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("completing a Completed booking is a no-op", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		bookingID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch,
				bookingDoc(bookingID, userID, primitive.NewObjectID(), models.StatusCompleted,
					time.Now().AddDate(0, 0, -3), time.Now().AddDate(0, 0, -1))),
		)

		w := performJSON(bc.CompleteBooking, http.MethodPatch, "/bookings/"+bookingID.Hex()+"/complete", "",
			func(c *gin.Context) {
				asUser(userID, "customer")(c)
				c.Params = gin.Params{{Key: "id", Value: bookingID.Hex()}}
			})

		require.Equal(mt, http.StatusOK, w.Code)

		var booking models.Booking
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &booking))
		assert.Equal(mt, models.StatusCompleted, booking.Status)
	})
}

func TestGetMyBookings_SweepAndJoin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("elapsed bookings are swept and rows carry the room charge", func(mt *mtest.T) {
		bc := NewBookingController(mt.Coll, mt.Coll, mt.Client, testConfig())
		userID := primitive.NewObjectID()
		roomID := primitive.NewObjectID()
		start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2030, 1, 3, 0, 0, 0, 0, time.UTC)

		joined := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: userID},
			{Key: "room_id", Value: roomID},
			{Key: "start_time", Value: primitive.NewDateTimeFromTime(start)},
			{Key: "end_time", Value: primitive.NewDateTimeFromTime(end)},
			{Key: "status", Value: models.StatusConfirmed},
			{Key: "room", Value: roomDoc(roomID)},
		}

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}), // sweep
			mtest.CreateCursorResponse(0, "hotel_booking.bookings", mtest.FirstBatch, joined),
		)

		w := performJSON(bc.GetMyBookings, http.MethodGet, "/my-bookings", "",
			asUser(userID, "customer"))

		require.Equal(mt, http.StatusOK, w.Code)

		var rows []struct {
			Status     string  `json:"status"`
			TotalPrice float64 `json:"total_price"`
			Room       struct {
				Category      string  `json:"category"`
				PricePerNight float64 `json:"price_per_night"`
			} `json:"room"`
		}
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(mt, rows, 1)
		assert.Equal(mt, models.CategorySuite, rows[0].Room.Category)
		assert.Equal(mt, 500.0, rows[0].Room.PricePerNight)
		assert.Equal(mt, 1000.0, rows[0].TotalPrice, "2 nights at 500")
	})
}
