package utils

import (
	"booking-service/internal/pkg/constvars"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// GenerateNumericCode returns length digits drawn from crypto/rand.
func GenerateNumericCode(length int) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	code := make([]byte, length)
	for i := range code {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = digits[num.Int64()]
	}

	return string(code), nil
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateExportObjectName(prefix string, at time.Time) string {
	timestamp := at.UTC().Format("20060102T150405Z")
	if prefix == "" {
		return fmt.Sprintf("bookings_%s.json", timestamp)
	}
	return fmt.Sprintf("%s/bookings_%s.json", prefix, timestamp)
}
