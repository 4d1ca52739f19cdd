package database

import (
	"booking-service/internal/app/config"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func NewPostgresDB(driverConfig *config.DriverConfig, logger *zap.Logger) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DbName,
		driverConfig.PostgresDB.SslMode,
	)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		logger.Fatal("Failed to open postgres database connection", zap.Error(err))
	}

	err = db.Ping()
	if err != nil {
		logger.Fatal("Failed to connect to postgres database", zap.Error(err))
	}

	logger.Info("Successfully connected to postgres database",
		zap.String("host", driverConfig.PostgresDB.Host),
		zap.String("db_name", driverConfig.PostgresDB.DbName),
	)
	return db
}
