package bookings

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Append Then Find", func(t *testing.T) {
		store := NewBookingMemoryRepository(zap.NewNop())
		booking := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")

		stored, err := store.Append(ctx, &booking)
		require.NoError(t, err)
		assert.Equal(t, booking, *stored)

		found, err := store.FindConflict(ctx, models.SlotKey{Date: "2026-01-19", Time: "09:15", Specialty: "cardiology"})
		require.NoError(t, err)
		assert.Equal(t, &booking, found)

		missing, err := store.FindConflict(ctx, models.SlotKey{Date: "2026-01-19", Time: "09:30", Specialty: "cardiology"})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Returned Records Are Copies", func(t *testing.T) {
		store := NewBookingMemoryRepository(zap.NewNop())
		booking := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		_, err := store.Append(ctx, &booking)
		require.NoError(t, err)

		all, err := store.LoadAll(ctx)
		require.NoError(t, err)
		all[0].Specialty = "mutated"

		again, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cardiology", again[0].Specialty)
	})

	t.Run("Seed Keeps First Holder Of A Slot", func(t *testing.T) {
		store := NewBookingMemoryRepository(zap.NewNop(),
			sampleBooking("APT-11111", "2026-01-19", "09:15", "cardiology"),
			sampleBooking("APT-22222", "2026-01-19", "09:15", "cardiology"),
		)

		all, err := store.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		found, err := store.FindConflict(ctx, models.SlotKey{Date: "2026-01-19", Time: "09:15", Specialty: "cardiology"})
		require.NoError(t, err)
		assert.Equal(t, "APT-11111", found.ConfirmationID)
	})

	t.Run("Cancelled Context Is A Storage Error", func(t *testing.T) {
		store := NewBookingMemoryRepository(zap.NewNop())
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		booking := sampleBooking("APT-00000001", "2026-01-19", "09:15", "cardiology")
		_, err := store.Append(cancelled, &booking)
		customErr := requireKind(t, err, exceptions.KindStorageError)
		assert.Equal(t, constvars.ErrDevStorageCancelled, customErr.DevMessage)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Expired Deadline Is A Timeout", func(t *testing.T) {
		store := NewBookingMemoryRepository(zap.NewNop())
		expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancel()

		_, err := store.FindConflict(expired, models.SlotKey{Date: "2026-01-19", Time: "09:15", Specialty: "cardiology"})
		customErr := requireKind(t, err, exceptions.KindStorageError)
		assert.Equal(t, constvars.ErrDevStorageTimeout, customErr.DevMessage)
	})

	t.Run("Seed Time Is Normalized", func(t *testing.T) {
		seed := sampleBooking("APT-11111", "2026-01-19", "9:15", "cardiology")
		store := NewBookingMemoryRepository(zap.NewNop(), seed)

		found, err := store.FindConflict(ctx, models.SlotKey{Date: "2026-01-19", Time: "09:15", Specialty: "cardiology"})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "APT-11111", found.ConfirmationID)
		assert.Equal(t, "9:15", seed.Time)
	})
}
