package shifts

import (
	"context"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorShiftMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorShiftMongoRepository(db *mongo.Client, dbName string) contracts.DoctorShiftRepository {
	return &DoctorShiftMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorShifts),
	}
}

func (repo *DoctorShiftMongoRepository) InsertShift(ctx context.Context, shift *models.DoctorShift) (*models.DoctorShift, error) {
	result, err := repo.Collection.InsertOne(ctx, shift)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	shift.ID = result.InsertedID.(primitive.ObjectID)
	return shift, nil
}

func (repo *DoctorShiftMongoRepository) FindShiftByShiftID(ctx context.Context, shiftID string) (*models.DoctorShift, error) {
	var shift models.DoctorShift
	err := repo.Collection.FindOne(ctx, bson.M{"shift_id": shiftID}).Decode(&shift)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &shift, nil
}

// FindActiveShifts returns active shifts in insertion order so overlap
// resolution is deterministic.
func (repo *DoctorShiftMongoRepository) FindActiveShifts(ctx context.Context) ([]models.DoctorShift, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"status": models.ShiftStatusActive}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var shifts []models.DoctorShift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return shifts, nil
}

func (repo *DoctorShiftMongoRepository) UpdateShift(ctx context.Context, shift *models.DoctorShift) error {
	shift.UpdatedAt = time.Now()
	filter := bson.M{"shift_id": shift.ShiftID}
	update := bson.M{"$set": shift}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrShiftNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *DoctorShiftMongoRepository) CountShifts(ctx context.Context) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
