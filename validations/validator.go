package validations

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/MuhammadAnus6529/KingsHotel6529/models"
)

// Register installs the custom enum validators on gin's binding engine.
// Call once before routes are mounted.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("room_category", validRoomCategory); err != nil {
		return err
	}
	return v.RegisterValidation("booking_status", validBookingStatus)
}

func validRoomCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validBookingStatus(fl validator.FieldLevel) bool {
	return models.IsValidStatus(fl.Field().String())
}
