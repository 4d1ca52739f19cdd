package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bookingFileRepository struct {
	Log    *zap.Logger
	Path   string
	mu     sync.RWMutex
	ledger *bookingLedger
}

// NewBookingFileRepository loads every booking stored at path into memory.
// A missing or empty file is an empty ledger. Each Append rewrites the file
// through a temp file and rename, and the in-memory ledger only changes once
// the rename succeeded.
func NewBookingFileRepository(logger *zap.Logger, path string) (contracts.BookingStore, error) {
	initial, err := readBookingFile(path)
	if err != nil {
		return nil, err
	}

	ledger, duplicates := newBookingLedger(initial)
	if duplicates > 0 {
		logger.Warn("NewBookingFileRepository file contains duplicate slots or confirmation ids",
			zap.String(constvars.LoggingFilePathKey, path),
			zap.Int(constvars.LoggingBookingCountKey, duplicates),
		)
	}

	logger.Info("NewBookingFileRepository loaded bookings",
		zap.String(constvars.LoggingFilePathKey, path),
		zap.Int(constvars.LoggingBookingCountKey, len(initial)),
	)

	return &bookingFileRepository{
		Log:    logger,
		Path:   path,
		ledger: ledger,
	}, nil
}

func (repo *bookingFileRepository) FindConflict(ctx context.Context, slot models.SlotKey) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.ledger.findBySlot(slot), nil
}

func (repo *bookingFileRepository) FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.ledger.findByConfirmationID(confirmationID), nil
}

func (repo *bookingFileRepository) Append(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("bookingFileRepository.Append called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConfirmationIDKey, booking.ConfirmationID),
	)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	if err := repo.ledger.admit(booking); err != nil {
		repo.Log.Warn("bookingFileRepository.Append rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
		)
		return nil, err
	}

	if err := writeBookingFile(repo.Path, repo.ledger.withPending(*booking)); err != nil {
		repo.Log.Error("bookingFileRepository.Append error writing file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFilePathKey, repo.Path),
			zap.Error(err),
		)
		return nil, err
	}
	repo.ledger.add(*booking)

	repo.Log.Info("bookingFileRepository.Append succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConfirmationIDKey, booking.ConfirmationID),
	)

	stored := *booking
	return &stored, nil
}

func (repo *bookingFileRepository) LoadAll(ctx context.Context) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.ledger.snapshot(), nil
}

func readBookingFile(path string) ([]models.Booking, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrFileStoreRead(err, path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Booking{}, nil
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, exceptions.ErrFileStoreRead(err, path)
	}
	return bookings, nil
}

func writeBookingFile(path string, bookings []models.Booking) error {
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return exceptions.ErrFileStoreWrite(err, path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return exceptions.ErrFileStoreWrite(err, path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return exceptions.ErrFileStoreWrite(err, path)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return exceptions.ErrFileStoreWrite(err, path)
	}
	if err := tmp.Close(); err != nil {
		return exceptions.ErrFileStoreWrite(err, path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return exceptions.ErrFileStoreWrite(err, path)
	}
	return nil
}
