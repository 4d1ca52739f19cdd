package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var target contracts.BookingStore
	switch internalConfig.Booking.StoreDriver {
	case constvars.StoreDriverPostgres:
		db := database.NewPostgresDB(driverConfig, log)
		defer db.Close()
		runPostgresMigrations(db, log)
		target = bookings.NewBookingPostgresRepository(db, log)
	case constvars.StoreDriverMongo:
		client := database.NewMongoDB(driverConfig, log)
		defer client.Disconnect(context.Background())
		repo := bookings.NewBookingMongoRepository(client, driverConfig.MongoDB.DbName, log)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal("Error ensuring booking indexes", zap.Error(err))
		}
		log.Info("Booking indexes are in place")
		target = repo
	default:
		log.Info("Store driver has no schema to migrate",
			zap.String(constvars.LoggingStoreDriverKey, internalConfig.Booking.StoreDriver),
		)
		return
	}

	legacyPath := utils.GetEnvString("MIGRATION_LEGACY_BOOKINGS_FILE_PATH", "")
	if legacyPath == "" {
		return
	}
	importLegacyLedger(ctx, legacyPath, target, log)
}

func runPostgresMigrations(db *sql.DB, log *zap.Logger) {
	dir := utils.GetEnvString("MIGRATION_DIR", "")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatal("Error getting working directory", zap.Error(err))
		}
		dir = filepath.Join(wd, "internal/migration")
	}

	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatal("Error executing migration", zap.Error(err))
	}

	log.Info("Applied migrations", zap.Int("count", n))
}

func importLegacyLedger(ctx context.Context, path string, target contracts.BookingStore, log *zap.Logger) {
	source, err := bookings.NewBookingFileRepository(log, path)
	if err != nil {
		log.Fatal("Error opening legacy bookings file", zap.String(constvars.LoggingFilePathKey, path), zap.Error(err))
	}

	summary, err := bookings.ImportBookings(ctx, source, target, log)
	if err != nil {
		log.Fatal("Error importing legacy bookings",
			zap.String(constvars.LoggingFilePathKey, path),
			zap.Int("imported", summary.Imported),
			zap.Error(err),
		)
	}

	log.Info("Imported legacy bookings",
		zap.String(constvars.LoggingFilePathKey, path),
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
	)
}
