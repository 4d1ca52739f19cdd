package bookings

import (
	"booking-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTime(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		kind     exceptions.ErrorKind
	}{
		{input: "00:00", expected: "00:00"},
		{input: "9:45", expected: "09:45"},
		{input: "23:45", expected: "23:45"},
		{input: "12:30", expected: "12:30"},
		{input: "12:05", kind: exceptions.KindInvalidInterval},
		{input: "12:59", kind: exceptions.KindInvalidInterval},
		{input: "24:00", kind: exceptions.KindInvalidTimeFormat},
		{input: "99:15", kind: exceptions.KindInvalidTimeFormat},
		{input: "12:5", kind: exceptions.KindInvalidTimeFormat},
		{input: "-1:00", kind: exceptions.KindInvalidTimeFormat},
		{input: "", kind: exceptions.KindInvalidTimeFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := ValidateTime(tc.input)
			if tc.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
				return
			}
			requireKind(t, err, tc.kind)
		})
	}
}

func TestValidateDate(t *testing.T) {
	result, err := ValidateDate("2026-01-19")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-19", result)

	result, err = ValidateDate("2028-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2028-02-29", result)

	for _, input := range []string{"2026-13-40", "tomorrow", "2027-02-29", "19-01-2026", ""} {
		_, err := ValidateDate(input)
		requireKind(t, err, exceptions.KindInvalidDate)
	}
}

func TestNormalizeSpecialty(t *testing.T) {
	assert.Equal(t, "General Practice", NormalizeSpecialty("", "General Practice"))
	assert.Equal(t, "General Practice", NormalizeSpecialty("   ", "General Practice"))
	assert.Equal(t, "Cardiology", NormalizeSpecialty(" Cardiology ", "General Practice"))
}
