package contracts

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/requests"
	"context"
)

// BookingStore persists committed bookings.
//
// Append is an atomic insert-if-absent keyed by the booking's slot. A taken
// slot is rejected with a SlotConflict error carrying the occupying booking,
// a taken confirmation id with a ConfirmationIdTaken error. Any other failure
// is a StorageError and leaves the store unchanged.
type BookingStore interface {
	FindConflict(ctx context.Context, slot models.SlotKey) (*models.Booking, error)
	FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error)
	Append(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	LoadAll(ctx context.Context) ([]models.Booking, error)
}

type BookingUsecase interface {
	Book(ctx context.Context, request *requests.BookAppointment) (*models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error)
}

type ConfirmationGenerator interface {
	Next(ctx context.Context) (string, error)
}

type BookingEventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error
}
