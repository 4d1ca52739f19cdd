package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingPatientIDKey      = "patient_id"
	LoggingDateKey           = "date"
	LoggingTimeKey           = "time"
	LoggingSpecialtyKey      = "specialty"
	LoggingConfirmationIDKey = "confirmation_id"
	LoggingErrorKindKey      = "error_kind"
	LoggingAttemptKey        = "attempt"
	LoggingStoreDriverKey    = "store_driver"
	LoggingToolNameKey       = "tool_name"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingQueueKey              = "queue"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
	LoggingBookingCountKey       = "booking_count"
	LoggingFilePathKey           = "file_path"
)
