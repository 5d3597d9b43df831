package prescriptions

import (
	"context"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (repo *PrescriptionMongoRepository) InsertPrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	result, err := repo.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	prescription.ID = result.InsertedID.(primitive.ObjectID)
	return prescription, nil
}

func (repo *PrescriptionMongoRepository) FindPrescriptionByConsultationID(ctx context.Context, consultationID string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := repo.Collection.FindOne(ctx, bson.M{"consultation_id": consultationID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

// UpdatePrescriptionDocumentStatus is the only mutation allowed on an issued
// prescription.
func (repo *PrescriptionMongoRepository) UpdatePrescriptionDocumentStatus(ctx context.Context, prescriptionID string, status models.PrescriptionDocumentStatus) error {
	filter := bson.M{"prescription_id": prescriptionID}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrMongoDBFindDocument(mongo.ErrNoDocuments)
	}
	return nil
}
