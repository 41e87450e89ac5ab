package models

import "errors"

// Booking errors; the messages are the exact strings the API returns.
var (
	ErrRoomAlreadyBooked = errors.New("Room already booked")
	ErrUserAlreadyBooked = errors.New("You already have a booking")
	ErrCannotCancel      = errors.New("Cannot cancel")
	ErrCannotComplete    = errors.New("Cannot complete")
)
