package bookings

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var bookingTimePattern = regexp.MustCompile(constvars.RegexBookingTime)

// ValidateDate accepts a calendar date in YYYY-MM-DD form.
func ValidateDate(value string) (string, error) {
	parsed, err := time.Parse(constvars.BookingDateLayout, value)
	if err != nil {
		return "", exceptions.ErrInvalidDate(err, value)
	}
	return parsed.Format(constvars.BookingDateLayout), nil
}

// ValidateTime accepts H:MM or HH:MM on the quarter hour grid and returns it as HH:MM.
// The minute is checked before the hour, so "25:10" reports the interval.
func ValidateTime(value string) (string, error) {
	matches := bookingTimePattern.FindStringSubmatch(value)
	if matches == nil {
		return "", exceptions.ErrInvalidTimeFormat(nil, value)
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", exceptions.ErrInvalidTimeFormat(err, value)
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil {
		return "", exceptions.ErrInvalidTimeFormat(err, value)
	}

	if !isAllowedMinute(minute) {
		return "", exceptions.ErrInvalidInterval(nil, value, minute)
	}
	if hour < 0 || hour > 23 {
		return "", exceptions.ErrInvalidHour(nil, value, hour)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func isAllowedMinute(minute int) bool {
	for _, allowed := range constvars.BookingAllowedMinutes {
		if minute == allowed {
			return true
		}
	}
	return false
}

// NormalizeSpecialty falls back to defaultSpecialty when specialty is empty.
// Matching stays case sensitive.
func NormalizeSpecialty(specialty, defaultSpecialty string) string {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return defaultSpecialty
	}
	return specialty
}

// NormalizeStoredSlot rewrites a stored booking's date and time to the forms
// Book produces, so "9:15" and "09:15" share a slot. Values that do not
// validate are left as stored.
func NormalizeStoredSlot(booking *models.Booking) {
	if date, err := ValidateDate(booking.Date); err == nil {
		booking.Date = date
	}
	if appointmentTime, err := ValidateTime(booking.Time); err == nil {
		booking.Time = appointmentTime
	}
}
