package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomConfirmationGenerator(t *testing.T) {
	generator := NewRandomConfirmationGenerator("APT-", 8)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := generator.Next(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, `^APT-\d{8}$`, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 95)
}

func TestSequenceConfirmationGenerator(t *testing.T) {
	t.Run("Pads The Counter", func(t *testing.T) {
		redisRepository := new(mockRedisRepository)
		redisRepository.On("Increment", context.Background(), "booking:confirmation:sequence").Return(int64(42), nil).Once()

		generator := NewSequenceConfirmationGenerator(redisRepository, "APT-", 8)
		id, err := generator.Next(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "APT-00000042", id)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Redis Failure Is Returned", func(t *testing.T) {
		redisRepository := new(mockRedisRepository)
		redisRepository.On("Increment", context.Background(), "booking:confirmation:sequence").Return(int64(0), errors.New("redis down"))

		generator := NewSequenceConfirmationGenerator(redisRepository, "APT-", 8)
		_, err := generator.Next(context.Background())

		assert.Error(t, err)
	})
}
