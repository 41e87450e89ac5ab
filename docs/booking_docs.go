package docs

// ===================== Create Booking =====================
// @Summary Reserve a room
// @Description Reserve a room for a date range; rejects overlapping stays
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [post]
func CreateBookingDoc() {}

// ===================== My Bookings =====================
// @Summary List the caller's bookings
// @Description Bookings joined with room category and nightly price
// @Tags bookings
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /my-bookings [get]
func MyBookingsDoc() {}

// ===================== Cancel Booking =====================
// @Summary Cancel a Confirmed booking
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings/{id}/cancel [patch]
func CancelBookingDoc() {}
