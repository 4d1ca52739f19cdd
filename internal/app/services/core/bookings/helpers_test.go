package bookings

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Booking: config.AppBooking{
			StorageTimeout:          2 * time.Second,
			ConfirmationPrefix:      constvars.DefaultConfirmationPrefix,
			ConfirmationDigits:      constvars.DefaultConfirmationDigits,
			ConfirmationMaxAttempts: 3,
			DefaultSpecialty:        constvars.DefaultSpecialty,
		},
	}
}

func newTestUsecase(store contracts.BookingStore, generator contracts.ConfirmationGenerator, publisher contracts.BookingEventPublisher) *bookingUsecase {
	uc := NewBookingUsecase(store, generator, publisher, newTestInternalConfig(), zap.NewNop()).(*bookingUsecase)
	uc.Now = func() time.Time { return fixedNow }
	return uc
}

func newMemoryUsecase() (*bookingUsecase, contracts.BookingStore) {
	store := NewBookingMemoryRepository(zap.NewNop())
	generator := NewRandomConfirmationGenerator(constvars.DefaultConfirmationPrefix, constvars.DefaultConfirmationDigits)
	return newTestUsecase(store, generator, nil), store
}

func bookRequest(date, appointmentTime, specialty string) *requests.BookAppointment {
	return &requests.BookAppointment{
		PatientID: "PAT001",
		Date:      date,
		Time:      appointmentTime,
		Specialty: specialty,
	}
}

func requireKind(t *testing.T, err error, kind exceptions.ErrorKind) *exceptions.CustomError {
	t.Helper()
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	require.Equal(t, kind, customErr.Kind, customErr.Error())
	return customErr
}

func conflictingBooking(t *testing.T, err error) *models.Booking {
	t.Helper()
	customErr := requireKind(t, err, exceptions.KindSlotConflict)
	booking, ok := customErr.Details["conflicting_booking"].(*models.Booking)
	require.True(t, ok, "conflict should carry the occupying booking")
	return booking
}

func sampleBooking(confirmationID, date, appointmentTime, specialty string) models.Booking {
	return models.Booking{
		ConfirmationID: confirmationID,
		PatientID:      "PAT001",
		Date:           date,
		Time:           appointmentTime,
		Specialty:      specialty,
		Status:         constvars.BookingStatusConfirmed,
		CreatedAt:      fixedNow,
	}
}
