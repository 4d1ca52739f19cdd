package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/queries"
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	pqUniqueViolation = "23505"
	pqStringTooLong   = "22001"
)

type bookingPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

// NewBookingPostgresRepository expects the schema from internal/migration,
// whose unique constraints make Append an insert-if-absent.
func NewBookingPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.BookingStore {
	return &bookingPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (repo *bookingPostgresRepository) FindConflict(ctx context.Context, slot models.SlotKey) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	row := repo.DB.QueryRowContext(ctx, queries.GetBookingBySlot, slot.Date, slot.Time, slot.Specialty)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("bookingPostgresRepository.FindConflict error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return booking, nil
}

func (repo *bookingPostgresRepository) FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	row := repo.DB.QueryRowContext(ctx, queries.GetBookingByConfirmationID, confirmationID)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("bookingPostgresRepository.FindByConfirmationID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConfirmationIDKey, confirmationID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return booking, nil
}

func (repo *bookingPostgresRepository) Append(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	_, err := repo.DB.ExecContext(ctx, queries.InsertBooking,
		booking.ConfirmationID,
		booking.PatientID,
		booking.Date,
		booking.Time,
		booking.Specialty,
		booking.Reason,
		booking.Status,
		booking.CreatedAt,
	)
	if err == nil {
		stored := *booking
		return &stored, nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqStringTooLong {
		repo.Log.Warn("bookingPostgresRepository.Append value too long",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBValueTooLong(err)
	}
	if pqErr == nil || pqErr.Code != pqUniqueViolation {
		repo.Log.Error("bookingPostgresRepository.Append error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	switch pqErr.Constraint {
	case queries.ConstraintBookingsUniqueConfirmationID:
		return nil, exceptions.ErrConfirmationIDTaken(err, booking.ConfirmationID)
	case queries.ConstraintBookingsUniqueSlot:
	default:
		repo.Log.Error("bookingPostgresRepository.Append unexpected unique violation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("constraint", pqErr.Constraint),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	slot := booking.Slot()
	existing, findErr := repo.FindConflict(ctx, slot)
	if findErr != nil {
		return nil, findErr
	}
	var confirmationID string
	if existing != nil {
		confirmationID = existing.ConfirmationID
	}
	return nil, exceptions.ErrSlotConflict(err, slot.Date, slot.Time, slot.Specialty, confirmationID, existing)
}

func (repo *bookingPostgresRepository) LoadAll(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllBookings)
	if err != nil {
		repo.Log.Error("bookingPostgresRepository.LoadAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var booking models.Booking
	var reason sql.NullString
	err := row.Scan(
		&booking.ConfirmationID,
		&booking.PatientID,
		&booking.Date,
		&booking.Time,
		&booking.Specialty,
		&reason,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reason.Valid {
		booking.Reason = &reason.String
	}
	booking.CreatedAt = booking.CreatedAt.UTC()
	return &booking, nil
}
