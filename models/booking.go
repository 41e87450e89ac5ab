package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. In-Progress and Waiting exist in the schema and can be
// set through the admin override, but no regular flow produces them.
const (
	StatusConfirmed  = "Confirmed"
	StatusInProgress = "In-Progress"
	StatusCancelled  = "Cancelled"
	StatusCompleted  = "Completed"
	StatusWaiting    = "Waiting"
)

var BookingStatuses = []string{StatusConfirmed, StatusInProgress, StatusCancelled, StatusCompleted, StatusWaiting}

// ActiveStatuses are the statuses that hold a room: only these take part
// in the overlap conflict check.
var ActiveStatuses = []string{StatusConfirmed, StatusInProgress}

type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	RoomID    primitive.ObjectID `bson:"room_id" json:"room_id"`
	StartTime time.Time          `bson:"start_time" json:"start_time"`
	EndTime   time.Time          `bson:"end_time" json:"end_time"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func IsValidStatus(status string) bool {
	for _, s := range BookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanCancel reports whether a user-initiated cancel is allowed from the
// given status. Only Confirmed bookings can be cancelled; cancelling a
// Cancelled booking again must fail rather than silently succeed.
func CanCancel(status string) bool {
	return status == StatusConfirmed
}

// CanComplete reports whether the Confirmed -> Completed transition
// applies. Completing an already Completed booking is a no-op handled by
// the caller, not a valid transition.
func CanComplete(status string) bool {
	return status == StatusConfirmed
}

// Overlaps is the half-open interval test used by the conflict check:
// [aStart, aEnd) and [bStart, bEnd) overlap, touching endpoints do not.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
