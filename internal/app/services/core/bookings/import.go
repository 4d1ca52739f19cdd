package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type ImportSummary struct {
	Imported int
	Skipped  int
}

// ImportBookings copies every booking from source into target in ledger
// order, normalizing legacy dates and times on the way. Records whose slot or confirmation id is already held by target
// are skipped. Any other failure stops the import.
func ImportBookings(ctx context.Context, source, target contracts.BookingStore, logger *zap.Logger) (ImportSummary, error) {
	var summary ImportSummary

	bookings, err := source.LoadAll(ctx)
	if err != nil {
		return summary, err
	}

	for i := range bookings {
		booking := bookings[i]
		if booking.Status == "" {
			booking.Status = constvars.BookingStatusConfirmed
		}
		NormalizeStoredSlot(&booking)

		_, err := target.Append(ctx, &booking)
		switch {
		case err == nil:
			summary.Imported++
		case exceptions.Is(err, exceptions.KindSlotConflict), exceptions.Is(err, exceptions.KindConfirmationIDTaken):
			summary.Skipped++
			logger.Info("ImportBookings skipped existing booking",
				zap.String(constvars.LoggingConfirmationIDKey, booking.ConfirmationID),
				zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			)
		default:
			return summary, err
		}
	}

	logger.Info("ImportBookings finished",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}
