package config

import (
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "booking"),
		},
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "booking"),
			SslMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Booking: AppBooking{
			StoreDriver:             utils.GetEnvString("BOOKING_STORE_DRIVER", constvars.StoreDriverFile),
			FilePath:                utils.GetEnvString("BOOKING_FILE_PATH", "bookings.json"),
			StorageTimeout:          utils.GetEnvSeconds("BOOKING_STORAGE_TIMEOUT_IN_SECONDS", 5),
			ConfirmationStrategy:    utils.GetEnvString("BOOKING_CONFIRMATION_STRATEGY", constvars.ConfirmationStrategyRandom),
			ConfirmationPrefix:      utils.GetEnvString("BOOKING_CONFIRMATION_PREFIX", constvars.DefaultConfirmationPrefix),
			ConfirmationDigits:      utils.GetEnvInt("BOOKING_CONFIRMATION_DIGITS", constvars.DefaultConfirmationDigits),
			ConfirmationMaxAttempts: utils.GetEnvInt("BOOKING_CONFIRMATION_MAX_ATTEMPTS", constvars.DefaultConfirmationMaxAttempts),
			DefaultSpecialty:        utils.GetEnvString("BOOKING_DEFAULT_SPECIALTY", constvars.DefaultSpecialty),
			EventsEnabled:           utils.GetEnvBool("BOOKING_EVENTS_ENABLED", false),
		},
		Export: AppExport{
			Enabled:      utils.GetEnvBool("APP_EXPORT_ENABLED", false),
			CronSpec:     utils.GetEnvString("APP_EXPORT_CRON_SPEC", "@daily"),
			ObjectPrefix: utils.GetEnvString("APP_EXPORT_OBJECT_PREFIX", "exports"),
			LockTTL:      utils.GetEnvSeconds("APP_EXPORT_LOCK_TTL_IN_SECONDS", 300),
			RunTimeout:   utils.GetEnvSeconds("APP_EXPORT_RUN_TIMEOUT_IN_SECONDS", 120),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("APP_MINIO_BOOKING_BUCKET_NAME", "bookings"),
		},
		RabbitMQ: AppRabbitMQ{
			BookingQueue: utils.GetEnvString("APP_RABBITMQ_BOOKING_QUEUE", "booking.confirmed"),
		},
	}
}
