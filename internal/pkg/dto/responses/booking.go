package responses

import "time"

type Appointment struct {
	ConfirmationID string    `json:"confirmation_number"`
	PatientID      string    `json:"patient_id"`
	Date           string    `json:"appointment_date"`
	Time           string    `json:"appointment_time"`
	Specialty      string    `json:"specialty"`
	Reason         *string   `json:"reason"`
	Status         string    `json:"status"`
	BookedAt       time.Time `json:"booked_at"`
}

type AppointmentDetails struct {
	PatientID string `json:"patient_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Specialty string `json:"specialty"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

type BookAppointment struct {
	ConfirmationID string             `json:"confirmation_number"`
	Details        AppointmentDetails `json:"details"`
	Instructions   []string           `json:"instructions"`
}

type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type ListTools struct {
	Tools []Tool `json:"tools"`
}
