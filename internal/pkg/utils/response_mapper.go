package utils

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"strings"
)

func MapBookingToAppointmentResponse(booking *models.Booking) responses.Appointment {
	return responses.Appointment{
		ConfirmationID: booking.ConfirmationID,
		PatientID:      booking.PatientID,
		Date:           booking.Date,
		Time:           booking.Time,
		Specialty:      booking.Specialty,
		Reason:         booking.Reason,
		Status:         booking.Status,
		BookedAt:       booking.CreatedAt,
	}
}

func MapBookingsToAppointmentResponses(bookings []models.Booking) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(bookings))
	for i := range bookings {
		result = append(result, MapBookingToAppointmentResponse(&bookings[i]))
	}
	return result
}

func MapBookingToBookAppointmentResponse(booking *models.Booking) *responses.BookAppointment {
	reason := constvars.DefaultReason
	if booking.Reason != nil && *booking.Reason != "" {
		reason = *booking.Reason
	}

	instructions := make([]string, len(constvars.BookingInstructions))
	copy(instructions, constvars.BookingInstructions)

	return &responses.BookAppointment{
		ConfirmationID: booking.ConfirmationID,
		Details: responses.AppointmentDetails{
			PatientID: booking.PatientID,
			Date:      booking.Date,
			Time:      booking.Time,
			Specialty: booking.Specialty,
			Reason:    reason,
			Status:    displayStatus(booking.Status),
		},
		Instructions: instructions,
	}
}

func MapToolArgsToBookAppointmentRequest(args *requests.BookAppointmentToolArgs) *requests.BookAppointment {
	return &requests.BookAppointment{
		PatientID: args.UserID,
		Date:      args.Date,
		Time:      args.Time,
		Specialty: args.Specialty,
		Reason:    args.Reason,
	}
}

func displayStatus(status string) string {
	if status == "" {
		return status
	}
	return strings.ToUpper(status[:1]) + status[1:]
}
