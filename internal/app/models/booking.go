package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Booking is a committed appointment. It is written once and never mutated.
type Booking struct {
	ConfirmationID string    `json:"confirmation_number" bson:"confirmationId"`
	PatientID      string    `json:"patient_id" bson:"patientId"`
	Date           string    `json:"appointment_date" bson:"date"`
	Time           string    `json:"appointment_time" bson:"time"`
	Specialty      string    `json:"specialty" bson:"specialty"`
	Reason         *string   `json:"reason" bson:"reason,omitempty"`
	Status         string    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"booked_at" bson:"createdAt"`
}

func (b *Booking) Slot() SlotKey {
	return SlotKey{
		Date:      b.Date,
		Time:      b.Time,
		Specialty: b.Specialty,
	}
}

// SlotKey identifies a bookable slot. At most one booking may hold a key.
type SlotKey struct {
	Date      string
	Time      string
	Specialty string
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s %s %s", k.Date, k.Time, k.Specialty)
}

var bookedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

type bookingRecord struct {
	ConfirmationID string  `json:"confirmation_number"`
	PatientID      string  `json:"patient_id"`
	Date           string  `json:"appointment_date"`
	Time           string  `json:"appointment_time"`
	Specialty      string  `json:"specialty"`
	Reason         *string `json:"reason"`
	Status         string  `json:"status"`
	BookedAt       string  `json:"booked_at"`
}

// UnmarshalJSON accepts booked_at with or without a zone offset. Values
// without one are read as UTC.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var record bookingRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	createdAt, err := parseBookedAt(record.BookedAt)
	if err != nil {
		return err
	}

	*b = Booking{
		ConfirmationID: record.ConfirmationID,
		PatientID:      record.PatientID,
		Date:           record.Date,
		Time:           record.Time,
		Specialty:      record.Specialty,
		Reason:         record.Reason,
		Status:         record.Status,
		CreatedAt:      createdAt,
	}
	return nil
}

func parseBookedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range bookedAtLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("booked_at %q is not a timestamp", value)
}
