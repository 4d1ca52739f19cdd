package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/drivers/messaging"
	"booking-service/internal/app/drivers/storage"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/app/services/core/exports"
	"booking-service/internal/app/services/shared/locker"
	"booking-service/internal/app/services/shared/publisher"
	"booking-service/internal/app/services/shared/redis"
	minioStorage "booking-service/internal/app/services/shared/storage"
	"booking-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	openDrivers(bootstrap)
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

// openDrivers connects only to the backends the configuration selects.
func openDrivers(bootstrap *config.Bootstrap) {
	cfg := bootstrap.InternalConfig

	switch cfg.Booking.StoreDriver {
	case constvars.StoreDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(bootstrap.DriverConfig, bootstrap.Logger)
	case constvars.StoreDriverPostgres:
		bootstrap.PostgresDB = database.NewPostgresDB(bootstrap.DriverConfig, bootstrap.Logger)
	}

	if cfg.Booking.ConfirmationStrategy == constvars.ConfirmationStrategySequence || cfg.Export.Enabled {
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig, bootstrap.Logger)
	}

	if cfg.Booking.EventsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig, bootstrap.Logger)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	// Booking store
	bookingStore := newBookingStore(bootstrap)

	// Confirmation numbers
	var generator contracts.ConfirmationGenerator
	switch cfg.Booking.ConfirmationStrategy {
	case constvars.ConfirmationStrategySequence:
		generator = bookings.NewSequenceConfirmationGenerator(redisRepository, cfg.Booking.ConfirmationPrefix, cfg.Booking.ConfirmationDigits)
	default:
		generator = bookings.NewRandomConfirmationGenerator(cfg.Booking.ConfirmationPrefix, cfg.Booking.ConfirmationDigits)
	}

	// Events
	eventPublisher := publisher.NewNoopBookingEventPublisher()
	if bootstrap.RabbitMQ != nil {
		var err error
		eventPublisher, err = publisher.NewBookingEventPublisher(bootstrap.RabbitMQ, cfg.RabbitMQ.BookingQueue, log)
		if err != nil {
			log.Fatal("Failed to initialize booking event publisher", zap.Error(err))
		}
	}

	bookingUsecase := bookings.NewBookingUsecase(bookingStore, generator, eventPublisher, cfg, log)

	// Ledger export
	if cfg.Export.Enabled {
		minioClient := storage.NewMinio(bootstrap.DriverConfig, log)
		exportUsecase := exports.NewExportUsecase(bookingStore, minioStorage.NewMinioStorage(minioClient), cfg, log)
		lockerService := locker.NewLockService(redisRepository, log)

		exportWorker := exports.NewWorker(log, cfg, lockerService, exportUsecase)
		exportWorker.Start(context.Background())
		bootstrap.WorkerStop = exportWorker.Stop
	}

	// HTTP
	middlewares := middlewares.NewMiddlewares(log, cfg)
	bookingController := controllers.NewBookingController(log, bookingUsecase, cfg)
	toolController := controllers.NewToolController(log, bookingUsecase, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, middlewares, bookingController, toolController)
}

func newBookingStore(bootstrap *config.Bootstrap) contracts.BookingStore {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	log.Info("Initializing booking store", zap.String(constvars.LoggingStoreDriverKey, cfg.Booking.StoreDriver))

	switch cfg.Booking.StoreDriver {
	case constvars.StoreDriverMemory:
		return bookings.NewBookingMemoryRepository(log)
	case constvars.StoreDriverMongo:
		repo := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName, log)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal("Failed to ensure booking indexes", zap.Error(err))
		}
		return repo
	case constvars.StoreDriverPostgres:
		return bookings.NewBookingPostgresRepository(bootstrap.PostgresDB, log)
	case constvars.StoreDriverFile:
		store, err := bookings.NewBookingFileRepository(log, cfg.Booking.FilePath)
		if err != nil {
			log.Fatal("Failed to open booking file store", zap.String(constvars.LoggingFilePathKey, cfg.Booking.FilePath), zap.Error(err))
		}
		return store
	default:
		log.Fatal("Unknown booking store driver", zap.String(constvars.LoggingStoreDriverKey, cfg.Booking.StoreDriver))
		return nil
	}
}
