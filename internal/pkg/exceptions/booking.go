package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
	"strings"
)

var (
	ErrInvalidDate = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidDateFormat, value), constvars.ErrDevInvalidDate).
			WithKind(KindInvalidDate).
			WithSuggestion(constvars.SuggestionDateFormat).
			WithDetail("value", value)
	}
	ErrInvalidTimeFormat = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidTimeFormat, value), constvars.ErrDevInvalidTimeFormat).
			WithKind(KindInvalidTimeFormat).
			WithDetail("value", value)
	}
	ErrInvalidHour = func(err error, value string, hour int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidHour, hour), constvars.ErrDevInvalidTimeFormat).
			WithKind(KindInvalidTimeFormat).
			WithDetail("value", value).
			WithDetail("hour", hour)
	}
	ErrInvalidInterval = func(err error, value string, minute int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientInvalidInterval, minute), constvars.ErrDevInvalidInterval).
			WithKind(KindInvalidInterval).
			WithSuggestion(constvars.SuggestionTimeInterval).
			WithDetail("value", value).
			WithDetail("minute", minute)
	}
	// ErrSlotConflict carries the occupying booking under the "conflicting_booking" detail.
	ErrSlotConflict = func(err error, date, time, specialty, confirmationID string, conflicting interface{}) *CustomError {
		slot := fmt.Sprintf("%s %s %s", date, time, specialty)
		return BuildNewCustomError(err, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientSlotConflict, date, time, specialty), fmt.Sprintf(constvars.ErrDevSlotConflict, slot, confirmationID)).
			WithKind(KindSlotConflict).
			WithSuggestion(constvars.SuggestionSlotConflict).
			WithDetail("conflicting_booking", conflicting)
	}
	ErrConfirmationIDTaken = func(err error, confirmationID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevConfirmationIDTaken, confirmationID)).
			WithKind(KindConfirmationIDTaken)
	}
	ErrConfirmationExhausted = func(err error, attempts int) *CustomError {
		return ErrStorage(err, fmt.Sprintf(constvars.ErrDevConfirmationExhausted, attempts))
	}
	ErrMissingParameter = func(err error, params ...string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientMissingParameters, strings.Join(params, ", ")), constvars.ErrDevMissingRequiredFields).
			WithKind(KindMissingParameter).
			WithSuggestion(constvars.SuggestionMissingParam).
			WithDetail("missing", params)
	}
	ErrParameterTooLong = func(err error, param string, maxLength int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientParameterTooLong, param, maxLength), fmt.Sprintf(constvars.ErrDevParameterTooLong, param, maxLength)).
			WithKind(KindBadRequest).
			WithDetail("parameter", param).
			WithDetail("max_length", maxLength)
	}
	ErrBookingNotFound = func(err error, confirmationID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, fmt.Sprintf(constvars.ErrDevBookingNotFound, confirmationID)).
			WithKind(KindNotFound)
	}
	ErrUnknownTool = func(err error, name string, available []string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientUnknownTool, name), fmt.Sprintf(constvars.ErrDevUnknownTool, name)).
			WithKind(KindUnknownTool).
			WithDetail("available_tools", available)
	}

	// Storage
	ErrStorage = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, devMessage).
			WithKind(KindStorageError).
			WithSuggestion(constvars.SuggestionRetryLater)
	}
	ErrStorageTimeout = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevStorageTimeout)
	}
	ErrFileStoreRead = func(err error, path string) *CustomError {
		return ErrStorage(err, fmt.Sprintf(constvars.ErrDevFileStoreRead, path))
	}
	ErrFileStoreWrite = func(err error, path string) *CustomError {
		return ErrStorage(err, fmt.Sprintf(constvars.ErrDevFileStoreWrite, path))
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToInsert)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToFind)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToIterate)
	}
	ErrMongoDBEnsureIndexes = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToEnsureSchema)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToInsert)
	}
	ErrPostgresDBValueTooLong = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientValueTooLong, constvars.ErrDevDBValueTooLong).
			WithKind(KindBadRequest)
	}
	ErrPostgresDBFindData = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToFind)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return ErrStorage(err, constvars.ErrDevDBFailedToIterate)
	}
)
