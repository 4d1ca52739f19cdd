package bookings

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
)

// bookingLedger is the in-process view shared by the memory and file
// repositories: an ordered log plus indexes on slot and confirmation id.
// Callers hold their own lock.
type bookingLedger struct {
	entries          []models.Booking
	bySlot           map[models.SlotKey]int
	byConfirmationID map[string]int
}

// newBookingLedger normalizes and indexes initial in order. Records that repeat a slot or
// confirmation id are kept in the log but the index points at the first
// holder; the number of such records is returned so callers can report it.
func newBookingLedger(initial []models.Booking) (*bookingLedger, int) {
	ledger := &bookingLedger{
		entries:          make([]models.Booking, 0, len(initial)),
		bySlot:           make(map[models.SlotKey]int, len(initial)),
		byConfirmationID: make(map[string]int, len(initial)),
	}
	duplicates := 0
	for i := range initial {
		booking := initial[i]
		NormalizeStoredSlot(&booking)
		if ledger.admit(&booking) != nil {
			duplicates++
		}
		ledger.add(booking)
	}
	return ledger, duplicates
}

func (l *bookingLedger) findBySlot(slot models.SlotKey) *models.Booking {
	index, ok := l.bySlot[slot]
	if !ok {
		return nil
	}
	booking := l.entries[index]
	return &booking
}

func (l *bookingLedger) findByConfirmationID(confirmationID string) *models.Booking {
	index, ok := l.byConfirmationID[confirmationID]
	if !ok {
		return nil
	}
	booking := l.entries[index]
	return &booking
}

// admit reports whether booking may be added without breaking slot or
// confirmation id uniqueness.
func (l *bookingLedger) admit(booking *models.Booking) error {
	slot := booking.Slot()
	if existing := l.findBySlot(slot); existing != nil {
		return exceptions.ErrSlotConflict(nil, slot.Date, slot.Time, slot.Specialty, existing.ConfirmationID, existing)
	}
	if l.findByConfirmationID(booking.ConfirmationID) != nil {
		return exceptions.ErrConfirmationIDTaken(nil, booking.ConfirmationID)
	}
	return nil
}

func (l *bookingLedger) add(booking models.Booking) {
	l.entries = append(l.entries, booking)
	index := len(l.entries) - 1
	if _, taken := l.bySlot[booking.Slot()]; !taken {
		l.bySlot[booking.Slot()] = index
	}
	if _, taken := l.byConfirmationID[booking.ConfirmationID]; !taken {
		l.byConfirmationID[booking.ConfirmationID] = index
	}
}

// withPending returns a copy of the log with booking appended, leaving the ledger untouched.
func (l *bookingLedger) withPending(booking models.Booking) []models.Booking {
	next := make([]models.Booking, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	return append(next, booking)
}

func (l *bookingLedger) snapshot() []models.Booking {
	result := make([]models.Booking, len(l.entries))
	copy(result, l.entries)
	return result
}

// contextError maps a finished context to a storage error. Only an expired
// deadline is reported as a timeout.
func contextError(err error) *exceptions.CustomError {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrStorageTimeout(err)
	}
	return exceptions.ErrStorage(err, constvars.ErrDevStorageCancelled)
}
