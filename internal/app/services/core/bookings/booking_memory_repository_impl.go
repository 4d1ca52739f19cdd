package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.uber.org/zap"
)

type bookingMemoryRepository struct {
	Log    *zap.Logger
	mu     sync.RWMutex
	ledger *bookingLedger
}

// NewBookingMemoryRepository keeps bookings for the life of the process only.
func NewBookingMemoryRepository(logger *zap.Logger, seed ...models.Booking) contracts.BookingStore {
	ledger, duplicates := newBookingLedger(seed)
	if duplicates > 0 {
		logger.Warn("NewBookingMemoryRepository seed contains duplicate slots or confirmation ids",
			zap.Int(constvars.LoggingBookingCountKey, duplicates),
		)
	}
	return &bookingMemoryRepository{
		Log:    logger,
		ledger: ledger,
	}
}

func (repo *bookingMemoryRepository) FindConflict(ctx context.Context, slot models.SlotKey) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.ledger.findBySlot(slot), nil
}

func (repo *bookingMemoryRepository) FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.ledger.findByConfirmationID(confirmationID), nil
}

func (repo *bookingMemoryRepository) Append(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if err := repo.ledger.admit(booking); err != nil {
		repo.Log.Warn("bookingMemoryRepository.Append rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		)
		return nil, err
	}
	repo.ledger.add(*booking)

	stored := *booking
	return &stored, nil
}

func (repo *bookingMemoryRepository) LoadAll(ctx context.Context) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.ledger.snapshot(), nil
}
