package bookings

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Is An Empty Ledger", func(t *testing.T) {
		store, err := NewBookingFileRepository(zap.NewNop(), filepath.Join(t.TempDir(), "bookings.json"))
		require.NoError(t, err)

		all, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Round Trip Survives Reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		store, err := NewBookingFileRepository(zap.NewNop(), path)
		require.NoError(t, err)

		reason := "chest pain"
		first := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		first.Reason = &reason
		first.CreatedAt = time.Date(2026, 1, 10, 8, 30, 15, 123456789, time.UTC)
		second := sampleBooking("APT-00000002", "2026-01-19", "09:30", "cardiology")

		_, err = store.Append(ctx, &first)
		require.NoError(t, err)
		_, err = store.Append(ctx, &second)
		require.NoError(t, err)

		written, err := store.LoadAll(ctx)
		require.NoError(t, err)

		reopened, err := NewBookingFileRepository(zap.NewNop(), path)
		require.NoError(t, err)
		read, err := reopened.LoadAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, written, read)
		assert.Equal(t, []models.Booking{first, second}, read)

		conflict, err := reopened.FindConflict(ctx, first.Slot())
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "APT-00000001", conflict.ConfirmationID)
	})

	t.Run("LoadAll Is Idempotent", func(t *testing.T) {
		store, err := NewBookingFileRepository(zap.NewNop(), filepath.Join(t.TempDir(), "bookings.json"))
		require.NoError(t, err)
		booking := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		_, err = store.Append(ctx, &booking)
		require.NoError(t, err)

		first, err := store.LoadAll(ctx)
		require.NoError(t, err)
		second, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Duplicate Slot Is Rejected", func(t *testing.T) {
		store, err := NewBookingFileRepository(zap.NewNop(), filepath.Join(t.TempDir(), "bookings.json"))
		require.NoError(t, err)
		first := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		second := sampleBooking("APT-00000002", "2026-01-19", "09:15", "cardiology")

		_, err = store.Append(ctx, &first)
		require.NoError(t, err)
		_, err = store.Append(ctx, &second)
		assert.Equal(t, "APT-00000001", conflictingBooking(t, err).ConfirmationID)
	})

	t.Run("Duplicate Confirmation Id Is Rejected", func(t *testing.T) {
		store, err := NewBookingFileRepository(zap.NewNop(), filepath.Join(t.TempDir(), "bookings.json"))
		require.NoError(t, err)
		first := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		second := sampleBooking("APT-00000001", "2026-01-19", "09:30", "cardiology")

		_, err = store.Append(ctx, &first)
		require.NoError(t, err)
		_, err = store.Append(ctx, &second)
		requireKind(t, err, exceptions.KindConfirmationIDTaken)
	})

	t.Run("Failed Write Leaves No State", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		path := filepath.Join(dir, "bookings.json")

		store, err := NewBookingFileRepository(zap.NewNop(), path)
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(dir))

		booking := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		_, err = store.Append(ctx, &booking)
		requireKind(t, err, exceptions.KindStorageError)

		conflict, err := store.FindConflict(ctx, booking.Slot())
		require.NoError(t, err)
		assert.Nil(t, conflict, "slot must stay free after a failed write")

		require.NoError(t, os.MkdirAll(dir, 0o755))
		_, err = store.Append(ctx, &booking)
		require.NoError(t, err, "store must recover once the medium is back")
	})

	t.Run("Legacy File Is Readable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		legacy := `[
  {
    "confirmation_number": "APT-48213",
    "patient_id": "PAT001",
    "appointment_date": "2026-01-19",
    "appointment_time": "09:15",
    "specialty": "Cardiology",
    "reason": null,
    "status": "confirmed",
    "booked_at": "2026-01-10T08:30:00.123456"
  }
]`
		require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

		store, err := NewBookingFileRepository(zap.NewNop(), path)
		require.NoError(t, err)

		all, err := store.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "APT-48213", all[0].ConfirmationID)
		assert.Nil(t, all[0].Reason)
		assert.Equal(t, time.Date(2026, 1, 10, 8, 30, 0, 123456000, time.UTC), all[0].CreatedAt)
	})

	t.Run("Legacy Single Digit Hour Holds Its Slot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		legacy := `[{"confirmation_number":"APT-48213","patient_id":"PAT001","appointment_date":"2026-01-19",` +
			`"appointment_time":"9:15","specialty":"Cardiology","reason":null,"status":"confirmed",` +
			`"booked_at":"2026-01-10T08:30:00.123456"}]`
		require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

		store, err := NewBookingFileRepository(zap.NewNop(), path)
		require.NoError(t, err)

		generator := NewRandomConfirmationGenerator("APT-", 8)
		uc := newTestUsecase(store, generator, nil)
		_, err = uc.Book(ctx, bookRequest("2026-01-19", "09:15", "Cardiology"))
		assert.Equal(t, "APT-48213", conflictingBooking(t, err).ConfirmationID)

		all, err := store.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "09:15", all[0].Time)
	})

	t.Run("Cancelled Context Is Not A Timeout", func(t *testing.T) {
		store, err := NewBookingFileRepository(zap.NewNop(), filepath.Join(t.TempDir(), "bookings.json"))
		require.NoError(t, err)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = store.LoadAll(cancelled)
		customErr := requireKind(t, err, exceptions.KindStorageError)
		assert.Equal(t, constvars.ErrDevStorageCancelled, customErr.DevMessage)
	})

	t.Run("Corrupt File Is A Storage Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewBookingFileRepository(zap.NewNop(), path)
		requireKind(t, err, exceptions.KindStorageError)
	})
}
