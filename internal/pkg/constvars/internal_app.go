package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "BKNG_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

const (
	ConfirmationStrategyRandom   = "random"
	ConfirmationStrategySequence = "sequence"
)

const MongoCollectionBookings = "bookings"

const (
	RedisKeyConfirmationSequence = "booking:confirmation:sequence"
	RedisKeyExportLeaderLock     = "booking:export:leader"
)
