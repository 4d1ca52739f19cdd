package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	mongoIndexUniqueSlot           = "unique_slot"
	mongoIndexUniqueConfirmationID = "unique_confirmation_id"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

// NewBookingMongoRepository relies on the unique indexes created by
// EnsureIndexes for insert-if-absent semantics.
func NewBookingMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) *BookingMongoRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
		Log:        logger,
	}
}

var _ contracts.BookingStore = (*BookingMongoRepository)(nil)

func (repo *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}, {Key: "specialty", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(mongoIndexUniqueSlot),
		},
		{
			Keys:    bson.D{{Key: "confirmationId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(mongoIndexUniqueConfirmationID),
		},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}},
			Options: options.Index().SetName("patient_idx"),
		},
	}

	_, err := repo.Collection.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		repo.Log.Error("BookingMongoRepository.EnsureIndexes error creating indexes",
			zap.Error(err),
		)
		return exceptions.ErrMongoDBEnsureIndexes(err)
	}
	return nil
}

func (repo *BookingMongoRepository) FindConflict(ctx context.Context, slot models.SlotKey) (*models.Booking, error) {
	filter := bson.M{"date": slot.Date, "time": slot.Time, "specialty": slot.Specialty}
	return repo.findOne(ctx, filter)
}

func (repo *BookingMongoRepository) FindByConfirmationID(ctx context.Context, confirmationID string) (*models.Booking, error) {
	return repo.findOne(ctx, bson.M{"confirmationId": confirmationID})
}

func (repo *BookingMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	var booking models.Booking
	err := repo.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) Append(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	_, err := repo.Collection.InsertOne(ctx, booking)
	if err == nil {
		stored := *booking
		return &stored, nil
	}

	if !mongo.IsDuplicateKeyError(err) {
		repo.Log.Error("BookingMongoRepository.Append error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	switch duplicateIndexName(err) {
	case mongoIndexUniqueConfirmationID:
		return nil, exceptions.ErrConfirmationIDTaken(err, booking.ConfirmationID)
	default:
		slot := booking.Slot()
		existing, findErr := repo.FindConflict(ctx, slot)
		if findErr != nil {
			return nil, findErr
		}
		var confirmationID string
		if existing != nil {
			confirmationID = existing.ConfirmationID
		}
		return nil, exceptions.ErrSlotConflict(err, slot.Date, slot.Time, slot.Specialty, confirmationID, existing)
	}
}

func (repo *BookingMongoRepository) LoadAll(ctx context.Context) ([]models.Booking, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

// duplicateIndexName extracts the violated index from an E11000 write error.
func duplicateIndexName(err error) string {
	var writeErr mongo.WriteException
	if !errors.As(err, &writeErr) {
		return ""
	}
	for _, we := range writeErr.WriteErrors {
		for _, name := range []string{mongoIndexUniqueSlot, mongoIndexUniqueConfirmationID} {
			if strings.Contains(we.Message, "index: "+name) {
				return name
			}
		}
	}
	return ""
}
