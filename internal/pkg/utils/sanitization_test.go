package utils

import (
	"booking-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBookAppointmentRequest(t *testing.T) {
	t.Run("Trims Every Field", func(t *testing.T) {
		request := &requests.BookAppointment{
			PatientID: "  PAT001 ",
			Date:      " 2026-01-19",
			Time:      "09:15  ",
			Specialty: "  Cardiology  ",
			Reason:    "  chest pain ",
		}

		SanitizeBookAppointmentRequest(request)

		assert.Equal(t, "PAT001", request.PatientID)
		assert.Equal(t, "2026-01-19", request.Date)
		assert.Equal(t, "09:15", request.Time)
		assert.Equal(t, "Cardiology", request.Specialty, "specialty should be trimmed but keep its case")
		assert.Equal(t, "chest pain", request.Reason)
	})

	t.Run("Blank Specialty Becomes Empty", func(t *testing.T) {
		request := &requests.BookAppointment{
			PatientID: "PAT001",
			Date:      "2026-01-19",
			Time:      "09:15",
			Specialty: "   ",
		}

		SanitizeBookAppointmentRequest(request)

		assert.Empty(t, request.Specialty, "whitespace specialty should be empty so the default applies")
	})
}

func TestSanitizeToolCallRequest(t *testing.T) {
	t.Run("Nil Args Become Empty Map", func(t *testing.T) {
		request := &requests.ToolCall{Name: " book_appointment "}

		SanitizeToolCallRequest(request)

		assert.Equal(t, "book_appointment", request.Name)
		assert.NotNil(t, request.Args)
		assert.Empty(t, request.Args)
	})
}
