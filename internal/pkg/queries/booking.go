package queries

const (
	InsertBooking = `
		INSERT INTO bookings (confirmation_id, patient_id, appointment_date, appointment_time, specialty, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	GetBookingBySlot = `
		SELECT confirmation_id, patient_id, appointment_date, appointment_time, specialty, reason, status, created_at
		FROM bookings
		WHERE appointment_date = $1 AND appointment_time = $2 AND specialty = $3`

	GetBookingByConfirmationID = `
		SELECT confirmation_id, patient_id, appointment_date, appointment_time, specialty, reason, status, created_at
		FROM bookings
		WHERE confirmation_id = $1`

	GetAllBookings = `
		SELECT confirmation_id, patient_id, appointment_date, appointment_time, specialty, reason, status, created_at
		FROM bookings
		ORDER BY id ASC`
)

// Constraint names raised by unique violations on the bookings table.
const (
	ConstraintBookingsUniqueSlot           = "bookings_unique_slot"
	ConstraintBookingsUniqueConfirmationID = "bookings_unique_confirmation_id"
)
