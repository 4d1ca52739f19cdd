package config

import "time"

type InternalConfig struct {
	App      App
	Booking  AppBooking
	Export   AppExport
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	RequestTimeoutInSeconds    int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

type AppBooking struct {
	StoreDriver             string
	FilePath                string
	StorageTimeout          time.Duration
	ConfirmationStrategy    string
	ConfirmationPrefix      string
	ConfirmationDigits      int
	ConfirmationMaxAttempts int
	DefaultSpecialty        string
	EventsEnabled           bool
}

type AppExport struct {
	Enabled      bool
	CronSpec     string
	ObjectPrefix string
	LockTTL      time.Duration
	RunTimeout   time.Duration
}

type AppMinio struct {
	BucketName string
}

type AppRabbitMQ struct {
	BookingQueue string
}
