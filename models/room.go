package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room categories offered by the hotel. Royal only appears on the admin
// form in practice but is accepted everywhere a category is validated.
const (
	CategoryStandard = "Standard"
	CategoryDeluxe   = "Deluxe"
	CategorySuite    = "Suite"
	CategoryRoyal    = "Royal"
)

var RoomCategories = []string{CategoryStandard, CategoryDeluxe, CategorySuite, CategoryRoyal}

type Room struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RoomNumber    string             `bson:"room_number" json:"room_number"`
	Category      string             `bson:"category" json:"category"`
	PricePerNight float64            `bson:"price_per_night" json:"price_per_night"`
	Description   string             `bson:"description" json:"description"`
	Image         string             `bson:"image" json:"image"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func IsValidCategory(category string) bool {
	for _, c := range RoomCategories {
		if c == category {
			return true
		}
	}
	return false
}
