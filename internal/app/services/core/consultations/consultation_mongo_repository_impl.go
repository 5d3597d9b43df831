package consultations

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

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

// EnsureIndexes creates the unique partial index that enforces at most one
// active consultation per patient. Activation must go through inserts or
// conditional updates so the index, not application reads, arbitrates races.
func (repo *ConsultationMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "patient_id", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexOneActiveConsultationPerPatient).
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"is_active": true}),
	}

	_, err := repo.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *ConsultationMongoRepository) InsertConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	result, err := repo.Collection.InsertOne(ctx, consultation)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repo.activeConflict(ctx, consultation.PatientID)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	consultation.ID = result.InsertedID.(primitive.ObjectID)
	return consultation, nil
}

func (repo *ConsultationMongoRepository) FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := repo.Collection.FindOne(ctx, bson.M{"consultation_id": consultationID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (repo *ConsultationMongoRepository) FindConsultationBySessionID(ctx context.Context, sessionID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := repo.Collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (repo *ConsultationMongoRepository) FindActiveConsultationByPatientID(ctx context.Context, patientID string) (*models.Consultation, error) {
	var consultation models.Consultation
	filter := bson.M{"patient_id": patientID, "is_active": true}
	err := repo.Collection.FindOne(ctx, filter).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (repo *ConsultationMongoRepository) SetAssessmentResults(ctx context.Context, consultationID string, assessment *models.StructuredAssessment, aiOutput *models.AIAgentOutput) error {
	return repo.setFields(ctx, consultationID, bson.M{
		"structured_assessment_input": assessment,
		"ai_agent_output":             aiOutput,
	})
}

func (repo *ConsultationMongoRepository) SetDoctorDiagnosis(ctx context.Context, consultationID string, diagnosis *models.DoctorDiagnosis) error {
	return repo.setFields(ctx, consultationID, bson.M{"doctor_diagnosis": diagnosis})
}

func (repo *ConsultationMongoRepository) SetPrescriptionDraft(ctx context.Context, consultationID string, medications []models.Medication, generalInstructions string) error {
	return repo.setFields(ctx, consultationID, bson.M{
		"prescription_data.medications":          medications,
		"prescription_data.general_instructions": generalInstructions,
	})
}

func (repo *ConsultationMongoRepository) SetDraftPDF(ctx context.Context, consultationID string, artifact *models.PDFArtifact) error {
	return repo.setFields(ctx, consultationID, bson.M{"prescription_data.draft_pdf": artifact})
}

func (repo *ConsultationMongoRepository) SetSignedPDF(ctx context.Context, consultationID string, artifact *models.PDFArtifact) error {
	return repo.setFields(ctx, consultationID, bson.M{"prescription_data.signed_pdf": artifact})
}

// setFields updates only the named fields. History arrays are touched
// exclusively by the $push append paths, so a concurrent append is never
// overwritten by a stale document.
func (repo *ConsultationMongoRepository) setFields(ctx context.Context, consultationID string, fields bson.M) error {
	fields["updated_at"] = time.Now()
	filter := bson.M{"consultation_id": consultationID}
	update := bson.M{"$set": fields}

	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}

// AppendStatusChange performs the status write and the history append in one
// update so the history never disagrees with the stored status.
func (repo *ConsultationMongoRepository) AppendStatusChange(ctx context.Context, consultationID string, change *models.StatusChange, newStatus models.ConsultationStatus, deactivate bool, completedAt *time.Time) error {
	setFields := bson.M{
		"status":     newStatus,
		"updated_at": time.Now(),
	}
	if deactivate {
		setFields["is_active"] = false
	}
	if completedAt != nil {
		setFields["completed_at"] = completedAt
	}

	filter := bson.M{"consultation_id": consultationID}
	update := bson.M{
		"$set":  setFields,
		"$push": bson.M{"status_history": change},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}

// AppendPrescriptionAction mirrors AppendStatusChange for the prescription
// sub-workflow: status write and history append in one update.
func (repo *ConsultationMongoRepository) AppendPrescriptionAction(ctx context.Context, consultationID string, entry *models.PrescriptionActionEntry, newStatus models.PrescriptionStatus) error {
	filter := bson.M{"consultation_id": consultationID}
	update := bson.M{
		"$set": bson.M{
			"prescription_status": newStatus,
			"updated_at":          time.Now(),
		},
		"$push": bson.M{"prescription_history": entry},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}

func (repo *ConsultationMongoRepository) AppendChatMessage(ctx context.Context, consultationID string, message *models.ChatMessage) error {
	filter := bson.M{"consultation_id": consultationID}
	update := bson.M{
		"$set":  bson.M{"updated_at": time.Now()},
		"$push": bson.M{"chat_history": message},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrConsultationNotFound(nil)
	}
	return nil
}

// activeConflict resolves the consultation that owns the unique slot so the
// conflict response can name it.
func (repo *ConsultationMongoRepository) activeConflict(ctx context.Context, patientID string) error {
	existing, findErr := repo.FindActiveConsultationByPatientID(ctx, patientID)
	if findErr == nil && existing != nil {
		return exceptions.ErrActiveConsultationExists(existing.ConsultationID)
	}
	return exceptions.ErrActiveConsultationExists(constvars.ResponseUnknown)
}
