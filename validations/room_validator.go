package validations

type CreateRoomRequest struct {
	RoomNumber    string  `json:"room_number" form:"room_number" binding:"required"`
	Category      string  `json:"category" form:"category" binding:"required,room_category"`
	PricePerNight float64 `json:"price_per_night" form:"price_per_night" binding:"required,gt=0"`
	Description   string  `json:"description" form:"description"`
	Image         string  `json:"image" form:"image"`
}

// UpdateRoomRequest mirrors the create shape; admin updates are plain
// field replacement.
type UpdateRoomRequest struct {
	RoomNumber    string  `json:"room_number" form:"room_number" binding:"required"`
	Category      string  `json:"category" form:"category" binding:"required,room_category"`
	PricePerNight float64 `json:"price_per_night" form:"price_per_night" binding:"required,gt=0"`
	Description   string  `json:"description" form:"description"`
	Image         string  `json:"image" form:"image"`
}
