package requests

type BookAppointment struct {
	PatientID string `json:"patient_id" validate:"required,max=255"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Specialty string `json:"specialty" validate:"max=255"`
	Reason    string `json:"reason"`
}

// ToolCall is the body of a tool invocation, e.g.
// {"name": "book_appointment", "args": {"user_id": "PAT001", ...}}.
type ToolCall struct {
	Name string                 `json:"name" validate:"required"`
	Args map[string]interface{} `json:"args"`
}

type BookAppointmentToolArgs struct {
	UserID    string `json:"user_id" validate:"required,max=255"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Specialty string `json:"specialty" validate:"max=255"`
	Reason    string `json:"reason"`
}
