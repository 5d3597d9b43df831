package contracts

import (
	"context"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	UpdateDiagnosis(ctx context.Context, session *models.Session, request *requests.UpdateDiagnosis) (*responses.DiagnosisUpdated, error)
	SaveDraft(ctx context.Context, session *models.Session, request *requests.SavePrescriptionDraft) (*responses.PrescriptionDraftSaved, error)
	GeneratePreview(ctx context.Context, session *models.Session, consultationID string) (*responses.PrescriptionPreview, error)
	SignAndSend(ctx context.Context, session *models.Session, request *requests.SignAndSendPrescription) (*responses.PrescriptionSigned, error)
	CompleteConsultation(ctx context.Context, session *models.Session, consultationID string) (*responses.ConsultationCompleted, error)
	RequestRevision(ctx context.Context, session *models.Session, consultationID, reason string) error
	GetDownloadURL(ctx context.Context, session *models.Session, consultationID string) (*responses.PrescriptionDownload, error)
}

type PrescriptionRepository interface {
	InsertPrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	FindPrescriptionByConsultationID(ctx context.Context, consultationID string) (*models.Prescription, error)
	UpdatePrescriptionDocumentStatus(ctx context.Context, prescriptionID string, status models.PrescriptionDocumentStatus) error
}
