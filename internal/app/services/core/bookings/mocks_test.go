package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) FindConflict(ctx context.Context, slot models.SlotKey) (*models.Booking, error) {
	args := m.Called(ctx, slot)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingStore) FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error) {
	args := m.Called(ctx, confirmationID)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingStore) Append(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	stored, _ := args.Get(0).(*models.Booking)
	return stored, args.Error(1)
}

func (m *mockBookingStore) LoadAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

type mockConfirmationGenerator struct {
	mock.Mock
}

func (m *mockConfirmationGenerator) Next(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

// flakyBookingStore fails the next failAppends calls to Append.
type flakyBookingStore struct {
	contracts.BookingStore
	mu          sync.Mutex
	failAppends int
}

func (s *flakyBookingStore) Append(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	if s.failAppends > 0 {
		s.failAppends--
		s.mu.Unlock()
		return nil, errors.New("write failed")
	}
	s.mu.Unlock()
	return s.BookingStore.Append(ctx, booking)
}
