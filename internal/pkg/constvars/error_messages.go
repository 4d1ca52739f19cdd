package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must match the format %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBookingNotFound               = "appointment not found"
	ErrClientStorageUnavailable            = "appointment storage is temporarily unavailable, please try again"
	ErrClientInvalidDateFormat             = "Invalid date format. Expected YYYY-MM-DD. Got: %s"
	ErrClientInvalidInterval               = "Time must be in 15-minute intervals (00, 15, 30, 45). Got: %d"
	ErrClientInvalidHour                   = "Hour must be between 00 and 23. Got: %d"
	ErrClientInvalidTimeFormat             = "Invalid time format. Expected HH:MM. Got: %s"
	ErrClientSlotConflict                  = "Time slot %s at %s is already booked for %s"
	ErrClientMissingParameters             = "Missing required parameters: %s"
	ErrClientUnknownTool                   = "Unknown tool: %s"
	ErrClientParameterTooLong              = "%s must be at most %d characters long"
	ErrClientValueTooLong                  = "a booking field exceeds its maximum length"
)

// Suggestions attached to booking failures
const (
	SuggestionDateFormat   = "Please provide date in YYYY-MM-DD format (e.g., 2026-01-19)"
	SuggestionTimeInterval = "Available times: 09:00, 09:15, 09:30, 09:45, 10:00, etc."
	SuggestionSlotConflict = "Please choose a different time or specialty."
	SuggestionRetryLater   = "Please try again in a moment."
	SuggestionMissingParam = "Provide user_id, date and time."
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevMissingRequiredFields  = "missing required fields"
	ErrDevServerProcess          = "server failed to process request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevMissingRequestID       = "request id missing from context"

	ErrDevInvalidDate            = "booking date failed to parse"
	ErrDevInvalidTimeFormat      = "booking time failed to parse"
	ErrDevInvalidInterval        = "booking time outside of the 15 minute grid"
	ErrDevSlotConflict           = "slot %s already taken by %s"
	ErrDevConfirmationIDTaken    = "confirmation id %s already issued"
	ErrDevConfirmationExhausted  = "could not mint a unique confirmation id after %d attempts"
	ErrDevBookingNotFound        = "booking %s not found"
	ErrDevStorageFailed          = "booking storage operation failed"
	ErrDevStorageTimeout         = "booking storage operation timed out"
	ErrDevStorageCancelled       = "booking storage operation was cancelled"
	ErrDevParameterTooLong       = "parameter %s longer than %d characters"
	ErrDevDBValueTooLong         = "booking value too long for its column"
	ErrDevFileStoreRead          = "failed to read booking file %s"
	ErrDevFileStoreWrite         = "failed to write booking file %s"
	ErrDevDBFailedToInsert       = "failed to insert booking into database"
	ErrDevDBFailedToFind         = "failed to find booking in database"
	ErrDevDBFailedToIterate      = "failed to iterate bookings from database"
	ErrDevDBFailedToEnsureSchema = "failed to ensure booking indexes"

	ErrDevRedisGetData         = "failed to get data from redis"
	ErrDevRedisSetData         = "failed to set data into redis"
	ErrDevRedisDeleteData      = "failed to delete data from redis"
	ErrDevRedisIncrementValue  = "failed to increment value in redis"
	ErrDevRedisLockNotOwned    = "lock not owned by this client"
	ErrDevRabbitMQPublish      = "failed to publish message into queue %s"
	ErrDevMinioCreateObject    = "failed to create object in bucket %s"
	ErrDevUnknownTool          = "tool %s is not registered"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
