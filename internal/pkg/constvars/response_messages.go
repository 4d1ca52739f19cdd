package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Booking messages
	BookAppointmentSuccessMessage  = "Appointment successfully booked!"
	GetAppointmentsSuccessMessage  = "get appointments successfully"
	GetAppointmentSuccessMessage   = "get appointment successfully"
	GetToolsSuccessMessage         = "get tools successfully"
)
