package validations

import "time"

type CreateBookingRequest struct {
	RoomID    string    `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type SetBookingStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}
