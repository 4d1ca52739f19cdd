package config

import (
	"booking-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Reads Environment", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_REQUEST_TIMEOUT_IN_SECONDS", "3")
		t.Setenv("BOOKING_STORE_DRIVER", constvars.StoreDriverMemory)
		t.Setenv("BOOKING_STORAGE_TIMEOUT_IN_SECONDS", "7")
		t.Setenv("BOOKING_DEFAULT_SPECIALTY", "Cardiology")
		t.Setenv("BOOKING_EVENTS_ENABLED", "true")
		t.Setenv("APP_EXPORT_CRON_SPEC", "@hourly")
		t.Setenv("APP_RABBITMQ_BOOKING_QUEUE", "bookings.audit")

		cfg := NewInternalConfig()

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, 3, cfg.App.RequestTimeoutInSeconds)
		assert.Equal(t, constvars.StoreDriverMemory, cfg.Booking.StoreDriver)
		assert.Equal(t, 7*time.Second, cfg.Booking.StorageTimeout)
		assert.Equal(t, "Cardiology", cfg.Booking.DefaultSpecialty)
		assert.True(t, cfg.Booking.EventsEnabled)
		assert.Equal(t, "@hourly", cfg.Export.CronSpec)
		assert.Equal(t, "bookings.audit", cfg.RabbitMQ.BookingQueue)
	})

	t.Run("Falls Back To Defaults", func(t *testing.T) {
		t.Setenv("BOOKING_STORAGE_TIMEOUT_IN_SECONDS", "0")
		t.Setenv("BOOKING_CONFIRMATION_DIGITS", "eight")
		t.Setenv("BOOKING_DEFAULT_SPECIALTY", "")

		cfg := NewInternalConfig()

		assert.Equal(t, 5*time.Second, cfg.Booking.StorageTimeout)
		assert.Equal(t, constvars.DefaultConfirmationDigits, cfg.Booking.ConfirmationDigits)
		assert.Equal(t, constvars.DefaultSpecialty, cfg.Booking.DefaultSpecialty)
	})
}
