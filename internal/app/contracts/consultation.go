package contracts

import (
	"context"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	SelectConsultationType(ctx context.Context, session *models.Session, request *requests.SelectConsultationType) (*responses.SelectConsultationType, error)
	ConfirmPayment(ctx context.Context, session *models.Session, request *requests.ConfirmPayment) (*responses.ConfirmPayment, error)
	CollectStructuredAssessment(ctx context.Context, session *models.Session, request *requests.CollectStructuredAssessment) (*responses.StructuredAssessmentResult, error)
	UpdateConsultationStatus(ctx context.Context, session *models.Session, request *requests.UpdateConsultationStatus) (*responses.ConsultationStatusUpdated, error)
	AppendChatMessage(ctx context.Context, session *models.Session, request *requests.AppendChatMessage) error
	GetActiveConsultation(ctx context.Context, patientID string) (*models.Consultation, error)
	CheckConsultationConflicts(ctx context.Context, patientID string) (*responses.ConsultationConflicts, error)
	HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error
	RefundConsultation(ctx context.Context, session *models.Session, consultationID, reason string) (*responses.PaymentRefund, error)
}

type ConsultationRepository interface {
	EnsureIndexes(ctx context.Context) error
	InsertConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error)
	FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindConsultationBySessionID(ctx context.Context, sessionID string) (*models.Consultation, error)
	FindActiveConsultationByPatientID(ctx context.Context, patientID string) (*models.Consultation, error)
	SetAssessmentResults(ctx context.Context, consultationID string, assessment *models.StructuredAssessment, aiOutput *models.AIAgentOutput) error
	SetDoctorDiagnosis(ctx context.Context, consultationID string, diagnosis *models.DoctorDiagnosis) error
	SetPrescriptionDraft(ctx context.Context, consultationID string, medications []models.Medication, generalInstructions string) error
	SetDraftPDF(ctx context.Context, consultationID string, artifact *models.PDFArtifact) error
	SetSignedPDF(ctx context.Context, consultationID string, artifact *models.PDFArtifact) error
	AppendStatusChange(ctx context.Context, consultationID string, change *models.StatusChange, newStatus models.ConsultationStatus, deactivate bool, completedAt *time.Time) error
	AppendPrescriptionAction(ctx context.Context, consultationID string, entry *models.PrescriptionActionEntry, newStatus models.PrescriptionStatus) error
	AppendChatMessage(ctx context.Context, consultationID string, message *models.ChatMessage) error
}
