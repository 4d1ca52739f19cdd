package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"fmt"
)

type randomConfirmationGenerator struct {
	Prefix string
	Digits int
}

// NewRandomConfirmationGenerator mints prefix plus crypto-random digits.
// Uniqueness is enforced by the store; the usecase re-mints on collision.
func NewRandomConfirmationGenerator(prefix string, digits int) contracts.ConfirmationGenerator {
	if digits <= 0 {
		digits = constvars.DefaultConfirmationDigits
	}
	return &randomConfirmationGenerator{
		Prefix: prefix,
		Digits: digits,
	}
}

func (g *randomConfirmationGenerator) Next(ctx context.Context) (string, error) {
	code, err := utils.GenerateNumericCode(g.Digits)
	if err != nil {
		return "", exceptions.ErrServerProcess(err)
	}
	return g.Prefix + code, nil
}

type sequenceConfirmationGenerator struct {
	RedisRepository contracts.RedisRepository
	Key             string
	Prefix          string
	Digits          int
}

// NewSequenceConfirmationGenerator mints prefix plus a zero padded counter
// shared by every instance through redis INCR.
func NewSequenceConfirmationGenerator(redisRepository contracts.RedisRepository, prefix string, digits int) contracts.ConfirmationGenerator {
	return &sequenceConfirmationGenerator{
		RedisRepository: redisRepository,
		Key:             constvars.RedisKeyConfirmationSequence,
		Prefix:          prefix,
		Digits:          digits,
	}
}

func (g *sequenceConfirmationGenerator) Next(ctx context.Context) (string, error) {
	value, err := g.RedisRepository.Increment(ctx, g.Key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", g.Prefix, g.Digits, value), nil
}
