package exports

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// LedgerSnapshot is the document uploaded on every export run.
type LedgerSnapshot struct {
	ExportedAt time.Time        `json:"exported_at"`
	Count      int              `json:"count"`
	Bookings   []models.Booking `json:"bookings"`
}

type exportUsecase struct {
	BookingStore   contracts.BookingStore
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	Now            func() time.Time
}

func NewExportUsecase(
	bookingStore contracts.BookingStore,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	return &exportUsecase{
		BookingStore:   bookingStore,
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            logger,
		Now:            time.Now,
	}
}

func (uc *exportUsecase) ExportLedger(ctx context.Context) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exportUsecase.ExportLedger called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bookings, err := uc.BookingStore.LoadAll(ctx)
	if err != nil {
		uc.Log.Error("exportUsecase.ExportLedger error loading bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	exportedAt := uc.Now().UTC()
	data, err := json.MarshalIndent(LedgerSnapshot{
		ExportedAt: exportedAt,
		Count:      len(bookings),
		Bookings:   bookings,
	}, "", "  ")
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateExportObjectName(uc.InternalConfig.Export.ObjectPrefix, exportedAt)
	objectName, err = uc.Storage.UploadBytes(ctx, data, bucketName, objectName, constvars.MIMEApplicationJSON)
	if err != nil {
		uc.Log.Error("exportUsecase.ExportLedger error uploading snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("exportUsecase.ExportLedger succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingBookingCountKey, len(bookings)),
	)
	return objectName, nil
}
