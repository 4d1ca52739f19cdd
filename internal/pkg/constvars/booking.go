package constvars

const (
	BookingDateLayout = "2006-01-02"

	BookingStatusConfirmed = "confirmed"

	// Matches the VARCHAR(255) patient_id and specialty columns.
	BookingFieldMaxLength = 255

	DefaultSpecialty = "General Practice"
	DefaultReason    = "General checkup"

	DefaultConfirmationPrefix      = "APT-"
	DefaultConfirmationDigits      = 8
	DefaultConfirmationMaxAttempts = 5
)

// Minutes accepted on the booking grid.
var BookingAllowedMinutes = []int{0, 15, 30, 45}

const (
	BookingEventConfirmed = "booking.confirmed"
)

const (
	ToolBookAppointment = "book_appointment"
)

// Post-booking copy handed back with every confirmation.
var BookingInstructions = []string{
	"Please arrive 15 minutes early",
	"Bring your insurance card and ID",
	"To cancel or reschedule, contact us 24 hours in advance",
}
