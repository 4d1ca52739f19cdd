package bookings

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const defaultStorageTimeout = 5 * time.Second

type bookingUsecase struct {
	BookingStore          contracts.BookingStore
	ConfirmationGenerator contracts.ConfirmationGenerator
	EventPublisher        contracts.BookingEventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	Now                   func() time.Time
}

func NewBookingUsecase(
	bookingStore contracts.BookingStore,
	confirmationGenerator contracts.ConfirmationGenerator,
	eventPublisher contracts.BookingEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingStore:          bookingStore,
		ConfirmationGenerator: confirmationGenerator,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
		Now:                   time.Now,
	}
}

func (uc *bookingUsecase) Book(ctx context.Context, request *requests.BookAppointment) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := checkRequiredParameters(request); err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	date, err := ValidateDate(strings.TrimSpace(request.Date))
	if err != nil {
		uc.logRejected(requestID, err)
		return nil, err
	}

	appointmentTime, err := ValidateTime(strings.TrimSpace(request.Time))
	if err != nil {
		uc.logRejected(requestID, err)
		return nil, err
	}

	specialty := NormalizeSpecialty(request.Specialty, uc.InternalConfig.Booking.DefaultSpecialty)
	if err := checkParameterLengths(request.PatientID, specialty); err != nil {
		uc.logRejected(requestID, err)
		return nil, err
	}
	slot := models.SlotKey{Date: date, Time: appointmentTime, Specialty: specialty}

	storageCtx, cancel := context.WithTimeout(ctx, uc.storageTimeout())
	defer cancel()

	// Fast path only. Append rejects a taken slot atomically.
	existing, err := uc.BookingStore.FindConflict(storageCtx, slot)
	if err != nil {
		return nil, uc.storageError(storageCtx, requestID, err)
	}
	if existing != nil {
		err := exceptions.ErrSlotConflict(nil, slot.Date, slot.Time, slot.Specialty, existing.ConfirmationID, existing)
		uc.logRejected(requestID, err)
		return nil, err
	}

	var reason *string
	if trimmed := strings.TrimSpace(request.Reason); trimmed != "" {
		reason = &trimmed
	}

	maxAttempts := uc.InternalConfig.Booking.ConfirmationMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constvars.DefaultConfirmationMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		confirmationID, err := uc.ConfirmationGenerator.Next(storageCtx)
		if err != nil {
			return nil, uc.storageError(storageCtx, requestID, err)
		}

		booking := &models.Booking{
			ConfirmationID: confirmationID,
			PatientID:      strings.TrimSpace(request.PatientID),
			Date:           slot.Date,
			Time:           slot.Time,
			Specialty:      slot.Specialty,
			Reason:         reason,
			Status:         constvars.BookingStatusConfirmed,
			CreatedAt:      uc.Now().UTC(),
		}

		stored, err := uc.BookingStore.Append(storageCtx, booking)
		if err == nil {
			uc.Log.Info("bookingUsecase.Book succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingConfirmationIDKey, stored.ConfirmationID),
				zap.String(constvars.LoggingDateKey, stored.Date),
				zap.String(constvars.LoggingTimeKey, stored.Time),
				zap.String(constvars.LoggingSpecialtyKey, stored.Specialty),
			)
			uc.publishConfirmed(ctx, requestID, stored)
			return stored, nil
		}

		switch exceptions.KindOf(err) {
		case exceptions.KindConfirmationIDTaken:
			uc.Log.Warn("bookingUsecase.Book confirmation id collision, minting another",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingConfirmationIDKey, confirmationID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
			continue
		case exceptions.KindSlotConflict, exceptions.KindBadRequest:
			uc.logRejected(requestID, err)
			return nil, err
		default:
			return nil, uc.storageError(storageCtx, requestID, err)
		}
	}

	err = exceptions.ErrConfirmationExhausted(nil, maxAttempts)
	uc.Log.Error("bookingUsecase.Book could not mint a unique confirmation id",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAttemptKey, maxAttempts),
	)
	return nil, err
}

func (uc *bookingUsecase) FindAll(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	storageCtx, cancel := context.WithTimeout(ctx, uc.storageTimeout())
	defer cancel()

	bookings, err := uc.BookingStore.LoadAll(storageCtx)
	if err != nil {
		return nil, uc.storageError(storageCtx, requestID, err)
	}

	uc.Log.Info("bookingUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return bookings, nil
}

func (uc *bookingUsecase) FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindByConfirmationID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConfirmationIDKey, confirmationID),
	)

	storageCtx, cancel := context.WithTimeout(ctx, uc.storageTimeout())
	defer cancel()

	booking, err := uc.BookingStore.FindByConfirmationID(storageCtx, confirmationID)
	if err != nil {
		return nil, uc.storageError(storageCtx, requestID, err)
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil, confirmationID)
	}
	return booking, nil
}

func (uc *bookingUsecase) storageTimeout() time.Duration {
	if uc.InternalConfig.Booking.StorageTimeout <= 0 {
		return defaultStorageTimeout
	}
	return uc.InternalConfig.Booking.StorageTimeout
}

func (uc *bookingUsecase) publishConfirmed(ctx context.Context, requestID string, booking *models.Booking) {
	if uc.EventPublisher == nil {
		return
	}
	if err := uc.EventPublisher.PublishBookingConfirmed(ctx, booking); err != nil {
		uc.Log.Warn("bookingUsecase.Book failed to publish booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConfirmationIDKey, booking.ConfirmationID),
			zap.Error(err),
		)
	}
}

// storageError normalizes any store failure into a StorageError.
func (uc *bookingUsecase) storageError(ctx context.Context, requestID string, err error) error {
	var result *exceptions.CustomError
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		result = exceptions.ErrStorageTimeout(err)
	case exceptions.Is(err, exceptions.KindStorageError):
		uc.Log.Error("bookingUsecase storage failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	default:
		result = exceptions.ErrStorage(err, constvars.ErrDevStorageFailed)
	}

	uc.Log.Error("bookingUsecase storage failure",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(result),
	)
	return result
}

func (uc *bookingUsecase) logRejected(requestID string, err error) {
	uc.Log.Info("bookingUsecase.Book rejected",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
	)
}

func checkRequiredParameters(request *requests.BookAppointment) error {
	if request == nil {
		return exceptions.ErrMissingParameter(nil, "patient_id", "date", "time")
	}

	var missing []string
	if strings.TrimSpace(request.PatientID) == "" {
		missing = append(missing, "patient_id")
	}
	if strings.TrimSpace(request.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(request.Time) == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return exceptions.ErrMissingParameter(nil, missing...)
	}
	return nil
}

// checkParameterLengths bounds the free-text slot fields to their column width.
func checkParameterLengths(patientID, specialty string) error {
	if utf8.RuneCountInString(strings.TrimSpace(patientID)) > constvars.BookingFieldMaxLength {
		return exceptions.ErrParameterTooLong(nil, "patient_id", constvars.BookingFieldMaxLength)
	}
	if utf8.RuneCountInString(specialty) > constvars.BookingFieldMaxLength {
		return exceptions.ErrParameterTooLong(nil, "specialty", constvars.BookingFieldMaxLength)
	}
	return nil
}
