package prescriptions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

type prescriptionUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	PrescriptionRepository contracts.PrescriptionRepository
	Renderer               contracts.PrescriptionRenderer
	SignatureService       contracts.SignatureService
	Storage                contracts.Storage
	AuditSink              contracts.AuditSink
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	consultationRepository contracts.ConsultationRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	renderer contracts.PrescriptionRenderer,
	signatureService contracts.SignatureService,
	storage contracts.Storage,
	auditSink contracts.AuditSink,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		instance := &prescriptionUsecase{
			ConsultationRepository: consultationRepository,
			PrescriptionRepository: prescriptionRepository,
			Renderer:               renderer,
			SignatureService:       signatureService,
			Storage:                storage,
			AuditSink:              auditSink,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		prescriptionUsecaseInstance = instance
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) UpdateDiagnosis(ctx context.Context, session *models.Session, request *requests.UpdateDiagnosis) (*responses.DiagnosisUpdated, error) {
	consultation, err := uc.findAssignedConsultation(ctx, session, request.ConsultationID)
	if err != nil {
		return nil, err
	}

	target := models.PrescriptionStatusDiagnosisModification
	if !consultation.PrescriptionStatus.CanTransitionTo(target) {
		return nil, exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}

	now := time.Now()
	diagnosis := &models.DoctorDiagnosis{
		Diagnosis:     request.Diagnosis,
		ClinicalNotes: request.ClinicalNotes,
		ChangesFromAI: request.ChangesFromAI,
		UpdatedBy:     session.DoctorID,
		UpdatedAt:     now,
	}
	if err := uc.ConsultationRepository.SetDoctorDiagnosis(ctx, consultation.ConsultationID, diagnosis); err != nil {
		return nil, err
	}

	entry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionDiagnosisUpdated,
		ActorID:   session.DoctorID,
		IPAddress: request.IPAddress,
		UserAgent: request.UserAgent,
		Timestamp: now,
	}
	if err := uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, entry, target); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionDiagnosisUpdated, session.DoctorID, consultation.ConsultationID, nil)

	return &responses.DiagnosisUpdated{
		ConsultationID:     consultation.ConsultationID,
		PrescriptionStatus: string(target),
		ChangesFromAI:      request.ChangesFromAI,
	}, nil
}

func (uc *prescriptionUsecase) SaveDraft(ctx context.Context, session *models.Session, request *requests.SavePrescriptionDraft) (*responses.PrescriptionDraftSaved, error) {
	consultation, err := uc.findAssignedConsultation(ctx, session, request.ConsultationID)
	if err != nil {
		return nil, err
	}

	target := models.PrescriptionStatusDraft
	if !consultation.PrescriptionStatus.CanTransitionTo(target) {
		return nil, exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}
	if len(request.Medications) == 0 {
		return nil, exceptions.ErrIncompletePrescriptionData(nil)
	}

	medications := make([]models.Medication, len(request.Medications))
	for i, input := range request.Medications {
		medications[i] = models.Medication{
			Name:         input.Name,
			Dosage:       input.Dosage,
			Frequency:    input.Frequency,
			Duration:     input.Duration,
			Instructions: input.Instructions,
		}
		if err := medications[i].Validate(); err != nil {
			return nil, exceptions.ErrIncompletePrescriptionData(err)
		}
	}

	if err := uc.ConsultationRepository.SetPrescriptionDraft(ctx, consultation.ConsultationID, medications, request.GeneralInstructions); err != nil {
		return nil, err
	}

	entry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionDraftSaved,
		ActorID:   session.DoctorID,
		IPAddress: request.IPAddress,
		UserAgent: request.UserAgent,
		Timestamp: time.Now(),
	}
	if err := uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, entry, target); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionPrescriptionDraftSaved, session.DoctorID, consultation.ConsultationID, map[string]string{
		"medication_count": strconv.Itoa(len(medications)),
	})

	return &responses.PrescriptionDraftSaved{
		ConsultationID:     consultation.ConsultationID,
		PrescriptionStatus: string(target),
		MedicationCount:    len(medications),
	}, nil
}

// GeneratePreview renders a watermarked draft PDF and moves the workflow to
// awaiting_review.
func (uc *prescriptionUsecase) GeneratePreview(ctx context.Context, session *models.Session, consultationID string) (*responses.PrescriptionPreview, error) {
	consultation, err := uc.findAssignedConsultation(ctx, session, consultationID)
	if err != nil {
		return nil, err
	}

	target := models.PrescriptionStatusAwaitingReview
	if !consultation.PrescriptionStatus.CanTransitionTo(target) {
		return nil, exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}
	if err := uc.validatePrescriptionContent(consultation); err != nil {
		return nil, err
	}

	pdfData, err := uc.Renderer.RenderDraft(consultation)
	if err != nil {
		return nil, err
	}

	artifact, err := uc.storePDF(ctx, consultation.ConsultationID, "draft", pdfData)
	if err != nil {
		return nil, err
	}

	if err := uc.ConsultationRepository.SetDraftPDF(ctx, consultation.ConsultationID, artifact); err != nil {
		return nil, err
	}

	entry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionPreviewGenerated,
		ActorID:   session.DoctorID,
		Timestamp: time.Now(),
	}
	if err := uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, entry, target); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionPrescriptionPreviewed, session.DoctorID, consultation.ConsultationID, nil)

	return &responses.PrescriptionPreview{
		ConsultationID:     consultation.ConsultationID,
		PrescriptionStatus: string(target),
		DownloadURL:        artifact.DownloadURL,
		SHA256Hash:         artifact.SHA256Hash,
	}, nil
}

// SignAndSend applies the digital signature, persists the immutable
// prescription document, and delivers the final PDF in one operation.
func (uc *prescriptionUsecase) SignAndSend(ctx context.Context, session *models.Session, request *requests.SignAndSendPrescription) (*responses.PrescriptionSigned, error) {
	consultation, err := uc.findAssignedConsultation(ctx, session, request.ConsultationID)
	if err != nil {
		return nil, err
	}

	if !consultation.PrescriptionStatus.CanTransitionTo(models.PrescriptionStatusSigned) {
		return nil, exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}
	if err := uc.validatePrescriptionContent(consultation); err != nil {
		return nil, err
	}

	contentHash := uc.hashPrescriptionContent(consultation)
	signature := uc.SignatureService.Sign(contentHash, session.DoctorID, request.IPAddress, request.UserAgent)

	pdfData, err := uc.Renderer.RenderSigned(consultation, signature)
	if err != nil {
		return nil, err
	}

	artifact, err := uc.storePDF(ctx, consultation.ConsultationID, "signed", pdfData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	prescription := &models.Prescription{
		PrescriptionID:   utils.GeneratePrescriptionID(),
		ConsultationID:   consultation.ConsultationID,
		PatientID:        consultation.PatientID,
		DoctorID:         session.DoctorID,
		Medications:      consultation.PrescriptionData.Medications,
		Diagnosis:        consultation.DoctorDiagnosis.Diagnosis,
		DigitalSignature: *signature,
		PDFDownloadURL:   artifact.DownloadURL,
		PDFHash:          artifact.SHA256Hash,
		Status:           models.PrescriptionDocumentIssued,
		IssuedAt:         now,
		ValidUntil:       now.AddDate(0, 0, constvars.PrescriptionValidityInDays),
	}
	if _, err := uc.PrescriptionRepository.InsertPrescription(ctx, prescription); err != nil {
		return nil, err
	}

	if err := uc.ConsultationRepository.SetSignedPDF(ctx, consultation.ConsultationID, artifact); err != nil {
		return nil, err
	}

	signedEntry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionSignatureApplied,
		ActorID:   session.DoctorID,
		IPAddress: request.IPAddress,
		UserAgent: request.UserAgent,
		Timestamp: now,
	}
	if err := uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, signedEntry, models.PrescriptionStatusSigned); err != nil {
		return nil, err
	}

	sentEntry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionSentToPatient,
		ActorID:   session.DoctorID,
		IPAddress: request.IPAddress,
		UserAgent: request.UserAgent,
		Timestamp: time.Now(),
	}
	if err := uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, sentEntry, models.PrescriptionStatusSent); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionPrescriptionSigned, session.DoctorID, consultation.ConsultationID, map[string]string{
		"prescription_id": prescription.PrescriptionID,
	})
	uc.recordAudit(ctx, models.AuditActionPrescriptionSent, session.DoctorID, consultation.ConsultationID, map[string]string{
		"prescription_id": prescription.PrescriptionID,
	})

	return &responses.PrescriptionSigned{
		PrescriptionID:     prescription.PrescriptionID,
		ConsultationID:     consultation.ConsultationID,
		PrescriptionStatus: string(models.PrescriptionStatusSent),
		DownloadURL:        artifact.DownloadURL,
		SHA256Hash:         artifact.SHA256Hash,
		IssuedAt:           prescription.IssuedAt,
		ValidUntil:         prescription.ValidUntil,
	}, nil
}

// CompleteConsultation closes the consultation once the prescription has been
// delivered, releasing the patient's active slot.
func (uc *prescriptionUsecase) CompleteConsultation(ctx context.Context, session *models.Session, consultationID string) (*responses.ConsultationCompleted, error) {
	consultation, err := uc.findAssignedConsultation(ctx, session, consultationID)
	if err != nil {
		return nil, err
	}

	if consultation.PrescriptionStatus != models.PrescriptionStatusSent {
		return nil, exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}
	if !consultation.Status.CanTransitionTo(models.ConsultationStatusCompleted) {
		return nil, exceptions.ErrInvalidStatusTransition(string(consultation.Status), string(models.ConsultationStatusCompleted))
	}

	now := time.Now()
	change := &models.StatusChange{
		From:      consultation.Status,
		To:        models.ConsultationStatusCompleted,
		ActorID:   session.DoctorID,
		ChangedAt: now,
	}
	if err := uc.ConsultationRepository.AppendStatusChange(ctx, consultation.ConsultationID, change, models.ConsultationStatusCompleted, true, &now); err != nil {
		return nil, err
	}

	entry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionCompleted,
		ActorID:   session.DoctorID,
		Timestamp: now,
	}
	if err := uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, entry, consultation.PrescriptionStatus); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionConsultationCompleted, session.DoctorID, consultation.ConsultationID, nil)

	return &responses.ConsultationCompleted{
		ConsultationID: consultation.ConsultationID,
		Status:         string(models.ConsultationStatusCompleted),
		CompletedAt:    now,
	}, nil
}

func (uc *prescriptionUsecase) RequestRevision(ctx context.Context, session *models.Session, consultationID, reason string) error {
	consultation, err := uc.findAssignedConsultation(ctx, session, consultationID)
	if err != nil {
		return err
	}

	target := models.PrescriptionStatusRevisionRequired
	if !consultation.PrescriptionStatus.CanTransitionTo(target) {
		return exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}

	entry := &models.PrescriptionActionEntry{
		Action:    models.PrescriptionActionRevisionRequested,
		ActorID:   session.DoctorID,
		Timestamp: time.Now(),
	}
	return uc.ConsultationRepository.AppendPrescriptionAction(ctx, consultation.ConsultationID, entry, target)
}

func (uc *prescriptionUsecase) GetDownloadURL(ctx context.Context, session *models.Session, consultationID string) (*responses.PrescriptionDownload, error) {
	consultation, err := uc.ConsultationRepository.FindConsultationByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}

	isParticipant := (session.PatientID != "" && session.PatientID == consultation.PatientID) ||
		(session.DoctorID != "" && session.DoctorID == consultation.DoctorID) ||
		session.Role == constvars.TenderlyRoleAdmin
	if !isParticipant {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	if consultation.PrescriptionData == nil || consultation.PrescriptionData.SignedPDF == nil {
		return nil, exceptions.ErrPrescriptionStateNotAllowed(string(consultation.PrescriptionStatus))
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours) * time.Hour
	downloadURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, consultation.PrescriptionData.SignedPDF.ObjectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.PrescriptionDownload{
		DownloadURL: downloadURL,
		SHA256Hash:  consultation.PrescriptionData.SignedPDF.SHA256Hash,
	}, nil
}

// findAssignedConsultation loads the consultation and ensures the caller is
// the assigned doctor.
func (uc *prescriptionUsecase) findAssignedConsultation(ctx context.Context, session *models.Session, consultationID string) (*models.Consultation, error) {
	consultation, err := uc.ConsultationRepository.FindConsultationByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}
	if session.DoctorID == "" || session.DoctorID != consultation.DoctorID {
		return nil, exceptions.ErrNotAssignedDoctor(nil)
	}
	return consultation, nil
}

// validatePrescriptionContent enforces the completeness rules before any
// rendering or signing: a diagnosis and at least one fully specified
// medication.
func (uc *prescriptionUsecase) validatePrescriptionContent(consultation *models.Consultation) error {
	if consultation.DoctorDiagnosis == nil || consultation.DoctorDiagnosis.Diagnosis == "" {
		return exceptions.ErrIncompletePrescriptionData(nil)
	}
	if consultation.PrescriptionData == nil || len(consultation.PrescriptionData.Medications) == 0 {
		return exceptions.ErrIncompletePrescriptionData(nil)
	}
	for i := range consultation.PrescriptionData.Medications {
		if err := consultation.PrescriptionData.Medications[i].Validate(); err != nil {
			return exceptions.ErrIncompletePrescriptionData(err)
		}
	}
	return nil
}

func (uc *prescriptionUsecase) storePDF(ctx context.Context, consultationID, kind string, pdfData []byte) (*models.PDFArtifact, error) {
	hash := sha256.Sum256(pdfData)
	objectName := utils.GenerateObjectName(kind, consultationID, ".pdf")

	if _, err := uc.Storage.UploadObject(ctx, uc.InternalConfig.Minio.BucketName, objectName, pdfData, constvars.MIMEApplicationPDF); err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours) * time.Hour
	downloadURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	return &models.PDFArtifact{
		ObjectName:  objectName,
		DownloadURL: downloadURL,
		SHA256Hash:  hex.EncodeToString(hash[:]),
		GeneratedAt: time.Now(),
	}, nil
}

func (uc *prescriptionUsecase) hashPrescriptionContent(consultation *models.Consultation) string {
	hasher := sha256.New()
	hasher.Write([]byte(consultation.ConsultationID))
	hasher.Write([]byte(consultation.DoctorDiagnosis.Diagnosis))
	for _, medication := range consultation.PrescriptionData.Medications {
		hasher.Write([]byte(medication.Name))
		hasher.Write([]byte(medication.Dosage))
		hasher.Write([]byte(medication.Frequency))
		hasher.Write([]byte(medication.Duration))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func (uc *prescriptionUsecase) recordAudit(ctx context.Context, action models.AuditAction, actorID, consultationID string, metadata map[string]string) {
	event := &models.AuditEvent{
		Action:     action,
		ActorID:    actorID,
		Resource:   "consultation",
		ResourceID: consultationID,
		Metadata:   metadata,
		OccurredAt: time.Now(),
	}
	if err := uc.AuditSink.Record(ctx, event); err != nil {
		uc.Log.Warn("prescriptionUsecase failed recording audit event",
			zap.String(constvars.LoggingAuditActionKey, string(action)),
			zap.Error(err),
		)
	}
}
