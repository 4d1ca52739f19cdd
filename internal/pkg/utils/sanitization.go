package utils

import (
	"booking-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeToolCallRequest(input *requests.ToolCall) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Args == nil {
		input.Args = map[string]interface{}{}
	}
}
