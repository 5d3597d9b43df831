package consultations

import (
	"context"
	"fmt"
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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	consultationUsecaseInstance contracts.ConsultationUsecase
	onceConsultationUsecase     sync.Once
)

type consultationUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	SessionStore           contracts.SessionStore
	LockerService          contracts.LockerService
	PaymentGateway         contracts.PaymentGatewayService
	DoctorShiftUsecase     contracts.DoctorShiftUsecase
	AIAgentClient          contracts.AIAgentClient
	AuditSink              contracts.AuditSink
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	sessionStore contracts.SessionStore,
	lockerService contracts.LockerService,
	paymentGateway contracts.PaymentGatewayService,
	doctorShiftUsecase contracts.DoctorShiftUsecase,
	aiAgentClient contracts.AIAgentClient,
	auditSink contracts.AuditSink,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.ConsultationUsecase, error) {
	var initErr error
	onceConsultationUsecase.Do(func() {
		instance := &consultationUsecase{
			ConsultationRepository: consultationRepository,
			SessionStore:           sessionStore,
			LockerService:          lockerService,
			PaymentGateway:         paymentGateway,
			DoctorShiftUsecase:     doctorShiftUsecase,
			AIAgentClient:          aiAgentClient,
			AuditSink:              auditSink,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		initErr = consultationRepository.EnsureIndexes(ctx)
		consultationUsecaseInstance = instance
	})
	if initErr != nil {
		return nil, initErr
	}
	return consultationUsecaseInstance, nil
}

func (uc *consultationUsecase) SelectConsultationType(ctx context.Context, session *models.Session, request *requests.SelectConsultationType) (*responses.SelectConsultationType, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("consultationUsecase.SelectConsultationType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
	)

	active, err := uc.ConsultationRepository.FindActiveConsultationByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, exceptions.ErrActiveConsultationExists(active.ConsultationID)
	}

	// A pending draft from another session is a conflict; the caller's own
	// session may refresh its draft freely. Expired drafts are superseded.
	existingDraft, err := uc.SessionStore.GetDraftByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if existingDraft != nil && existingDraft.SessionID != request.SessionID &&
		!existingDraft.IsExpired(now) && existingDraft.Status == models.ConsultationStatusPaymentPending {
		return nil, exceptions.ErrPendingPaymentDraftExists(nil)
	}

	consultationType := constvars.ConsultationType(request.SelectedConsultationType)
	amount := constvars.ConsultationTypeToPrice[consultationType]

	order, err := uc.PaymentGateway.CreateOrder(ctx, &requests.CreatePaymentOrder{
		ReferenceID:      request.SessionID,
		Amount:           amount,
		Currency:         constvars.DefaultCurrency,
		CustomerID:       session.PatientID,
		ExpiresInMinutes: uc.InternalConfig.Consultation.PaymentWindowInMinutes,
	})
	if err != nil {
		return nil, err
	}

	draft := &models.ConsultationDraft{
		SessionID:        request.SessionID,
		PatientID:        session.PatientID,
		ConsultationType: consultationType,
		PaymentID:        order.PaymentID,
		OrderID:          order.OrderID,
		Status:           models.ConsultationStatusPaymentPending,
		CreatedAt:        now,
		ExpiresAt:        now.Add(time.Duration(uc.InternalConfig.Consultation.DraftExpiryTimeInMinutes) * time.Minute),
	}
	if request.DetailedSymptoms != nil {
		draft.DetailedSymptoms = &models.DetailedSymptoms{
			PrimaryComplaint: request.DetailedSymptoms.PrimaryComplaint,
			DurationDays:     request.DetailedSymptoms.DurationDays,
			Severity:         request.DetailedSymptoms.Severity,
			Answers:          request.DetailedSymptoms.Answers,
		}
	}

	draftTTL := time.Duration(uc.InternalConfig.Consultation.DraftExpiryTimeInMinutes) * time.Minute
	if err := uc.SessionStore.SaveDraft(ctx, draft, draftTTL); err != nil {
		return nil, err
	}

	paymentRecord := &models.PaymentRecord{
		PaymentID: order.PaymentID,
		OrderID:   order.OrderID,
		SessionID: request.SessionID,
		PatientID: session.PatientID,
		Amount:    amount,
		Currency:  constvars.DefaultCurrency,
		Status:    models.PaymentStatusPending,
		CreatedAt: now,
		ExpiresAt: order.ExpiresAt,
	}
	recordTTL := time.Duration(uc.InternalConfig.Consultation.PaymentRecordExpiryTimeInMinutes) * time.Minute
	if order.PaymentID != "" {
		if err := uc.SessionStore.SavePaymentRecord(ctx, paymentRecord, recordTTL); err != nil {
			return nil, err
		}
	}

	uc.recordAudit(ctx, models.AuditActionConsultationTypeSelected, session.UserID, "consultation_draft", request.SessionID, map[string]string{
		"consultation_type": string(consultationType),
		"order_id":          order.OrderID,
	})

	return &responses.SelectConsultationType{
		PaymentID:  order.PaymentID,
		OrderID:    order.OrderID,
		Amount:     amount,
		Currency:   constvars.DefaultCurrency,
		Status:     string(models.ConsultationStatusPaymentPending),
		PaymentURL: order.PaymentURL,
		ExpiresAt:  draft.ExpiresAt,
	}, nil
}

// ConfirmPayment promotes a draft into a permanent consultation exactly once.
// Replays and concurrent confirmations of the same session converge on the
// consultation created by the first successful call.
func (uc *consultationUsecase) ConfirmPayment(ctx context.Context, session *models.Session, request *requests.ConfirmPayment) (*responses.ConfirmPayment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("consultationUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
		zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyPaymentLockFormat, request.SessionID)
	lockTTL := time.Duration(uc.InternalConfig.Consultation.PaymentLockExpiryTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		existing, findErr := uc.ConsultationRepository.FindConsultationBySessionID(ctx, request.SessionID)
		if findErr != nil {
			return nil, findErr
		}
		if existing != nil {
			return uc.buildConfirmPaymentResponse(existing), nil
		}
		return nil, exceptions.ErrPendingPaymentDraftExists(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("consultationUsecase.ConfirmPayment failed releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	existing, err := uc.ConsultationRepository.FindConsultationBySessionID(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return uc.buildConfirmPaymentResponse(existing), nil
	}

	draft, err := uc.SessionStore.GetDraft(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, exceptions.ErrDraftNotFoundOrExpired(nil)
	}

	now := time.Now()
	if draft.IsExpired(now) {
		uc.SessionStore.DeleteDraft(ctx, request.SessionID)
		return nil, exceptions.ErrDraftNotFoundOrExpired(nil)
	}
	if draft.PatientID != session.PatientID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	paymentRecord, err := uc.SessionStore.GetPaymentRecord(ctx, request.PaymentID)
	if err != nil {
		return nil, err
	}
	if paymentRecord != nil && paymentRecord.IsExpired(now) {
		return nil, exceptions.ErrPaymentExpired(nil)
	}

	verification, err := uc.PaymentGateway.VerifyPayment(ctx, &requests.VerifyPayment{
		PaymentID: request.PaymentID,
		OrderID:   draft.OrderID,
		Signature: request.Signature,
	})
	if err != nil {
		return nil, err
	}
	if !verification.Verified {
		return nil, exceptions.ErrPaymentVerificationFailed(nil)
	}
	if verification.OrderID != draft.OrderID {
		return nil, exceptions.ErrPaymentVerificationFailed(fmt.Errorf("payment belongs to order %s, draft expects %s", verification.OrderID, draft.OrderID))
	}
	// A zero amount means the gateway did not report one.
	expectedAmount := constvars.ConsultationTypeToPrice[draft.ConsultationType]
	if verification.Amount != 0 && verification.Amount != expectedAmount {
		return nil, exceptions.ErrPaymentVerificationFailed(fmt.Errorf("paid amount %d does not match expected %d", verification.Amount, expectedAmount))
	}
	paidAmount := verification.Amount
	if paidAmount == 0 {
		paidAmount = expectedAmount
	}

	doctorID := ""
	currentDoctor, err := uc.DoctorShiftUsecase.GetCurrentDoctor(ctx, now)
	if err == nil && currentDoctor != nil {
		doctorID = currentDoctor.DoctorID
	} else if err != nil {
		uc.Log.Warn("consultationUsecase.ConfirmPayment no doctor on duty, leaving unassigned",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	confirmedAt := now
	consultation := &models.Consultation{
		ConsultationID:    utils.GenerateConsultationID(),
		ClinicalSessionID: utils.GenerateClinicalSessionID(),
		SessionID:         request.SessionID,
		PatientID:         draft.PatientID,
		DoctorID:          doctorID,
		ConsultationType:  draft.ConsultationType,
		Status:            models.ConsultationStatusPaymentConfirmed,
		PrescriptionStatus: models.PrescriptionStatusNotStarted,
		PaymentInfo: models.PaymentInfo{
			PaymentID:            request.PaymentID,
			OrderID:              draft.OrderID,
			GatewayTransactionID: verification.GatewayTransactionID,
			PaymentMethod:        request.PaymentMethod,
			Amount:               paidAmount,
			Currency:             verification.Currency,
			PaymentStatus:        models.PaymentStatusCompleted,
			ConfirmedAt:          &confirmedAt,
		},
		DetailedSymptoms: draft.DetailedSymptoms,
		StatusHistory: []models.StatusChange{
			{From: models.ConsultationStatusDraft, To: models.ConsultationStatusPaymentPending, ActorID: session.UserID, ChangedAt: draft.CreatedAt},
			{From: models.ConsultationStatusPaymentPending, To: models.ConsultationStatusPaymentConfirmed, ActorID: session.UserID, ChangedAt: now},
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := uc.ConsultationRepository.InsertConsultation(ctx, consultation)
	if err != nil {
		return nil, err
	}

	if paymentRecord != nil {
		paymentRecord.Status = models.PaymentStatusCompleted
		paymentRecord.GatewayResponse = verification.Raw
		recordTTL := time.Duration(uc.InternalConfig.Consultation.PaymentRecordExpiryTimeInMinutes) * time.Minute
		if saveErr := uc.SessionStore.SavePaymentRecord(ctx, paymentRecord, recordTTL); saveErr != nil {
			uc.Log.Warn("consultationUsecase.ConfirmPayment failed updating payment record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(saveErr),
			)
		}
	}

	if delErr := uc.SessionStore.DeleteDraft(ctx, request.SessionID); delErr != nil {
		uc.Log.Warn("consultationUsecase.ConfirmPayment failed deleting draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(delErr),
		)
	}

	uc.recordAudit(ctx, models.AuditActionPaymentConfirmed, session.UserID, "consultation", inserted.ConsultationID, map[string]string{
		"order_id":   draft.OrderID,
		"payment_id": request.PaymentID,
	})

	return uc.buildConfirmPaymentResponse(inserted), nil
}

func (uc *consultationUsecase) CollectStructuredAssessment(ctx context.Context, session *models.Session, request *requests.CollectStructuredAssessment) (*responses.StructuredAssessmentResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("consultationUsecase.CollectStructuredAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicalSessionIDKey, request.ClinicalSessionID),
	)

	consultation, err := uc.ConsultationRepository.FindActiveConsultationByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if consultation == nil || consultation.ClinicalSessionID != request.ClinicalSessionID {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}
	if consultation.PaymentInfo.PaymentStatus != models.PaymentStatusCompleted {
		return nil, exceptions.ErrPaymentNotCompleted(nil)
	}
	if consultation.Status != models.ConsultationStatusPaymentConfirmed {
		return nil, exceptions.ErrInvalidStatusTransition(string(consultation.Status), string(models.ConsultationStatusClinicalAssessmentPending))
	}

	enterChange := &models.StatusChange{
		From:      models.ConsultationStatusPaymentConfirmed,
		To:        models.ConsultationStatusClinicalAssessmentPending,
		ActorID:   session.UserID,
		ChangedAt: time.Now(),
	}
	if err := uc.ConsultationRepository.AppendStatusChange(ctx, consultation.ConsultationID, enterChange, models.ConsultationStatusClinicalAssessmentPending, false, nil); err != nil {
		return nil, err
	}

	assessment := &models.StructuredAssessment{
		ChiefComplaint:      request.ChiefComplaint,
		SymptomDurationDays: request.SymptomDurationDays,
		PainLevel:           request.PainLevel,
		MenstrualHistory:    request.MenstrualHistory,
		ObstetricHistory:    request.ObstetricHistory,
		CurrentMedications:  request.CurrentMedications,
		Allergies:           request.Allergies,
		AdditionalAnswers:   request.AdditionalAnswers,
	}

	aiOutput, err := uc.AIAgentClient.Diagnose(ctx, assessment)
	if err != nil {
		return nil, err
	}

	if err := uc.ConsultationRepository.SetAssessmentResults(ctx, consultation.ConsultationID, assessment, aiOutput); err != nil {
		return nil, err
	}

	now := time.Now()
	change := &models.StatusChange{
		From:      models.ConsultationStatusClinicalAssessmentPending,
		To:        models.ConsultationStatusClinicalAssessmentComplete,
		ActorID:   session.UserID,
		ChangedAt: now,
	}
	if err := uc.ConsultationRepository.AppendStatusChange(ctx, consultation.ConsultationID, change, models.ConsultationStatusClinicalAssessmentComplete, false, nil); err != nil {
		return nil, err
	}

	// Route to the assigned doctor when one was resolved at payment time,
	// otherwise park the consultation for manual review.
	nextStatus := models.ConsultationStatusDoctorReviewPending
	if consultation.DoctorID != "" {
		nextStatus = models.ConsultationStatusDoctorAssigned
	}
	routeChange := &models.StatusChange{
		From:      models.ConsultationStatusClinicalAssessmentComplete,
		To:        nextStatus,
		ActorID:   "system",
		ChangedAt: time.Now(),
	}
	if err := uc.ConsultationRepository.AppendStatusChange(ctx, consultation.ConsultationID, routeChange, nextStatus, false, nil); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionAssessmentCollected, session.UserID, "consultation", consultation.ConsultationID, map[string]string{
		"schema_version": aiOutput.SchemaVersion,
	})

	return &responses.StructuredAssessmentResult{
		ConsultationID:     consultation.ConsultationID,
		ClinicalSessionID:  consultation.ClinicalSessionID,
		Status:             string(nextStatus),
		SchemaVersion:      aiOutput.SchemaVersion,
		Diagnosis:          aiOutput.Diagnosis,
		Confidence:         aiOutput.Confidence,
		Recommendations:    aiOutput.Recommendations,
		SuggestedTests:     aiOutput.SuggestedTests,
		SeverityAssessment: aiOutput.SeverityAssessment,
	}, nil
}

func (uc *consultationUsecase) UpdateConsultationStatus(ctx context.Context, session *models.Session, request *requests.UpdateConsultationStatus) (*responses.ConsultationStatusUpdated, error) {
	consultation, err := uc.ConsultationRepository.FindConsultationByID(ctx, request.ConsultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}

	if err := uc.authorizeStatusChange(session, consultation); err != nil {
		return nil, err
	}

	target := models.ConsultationStatus(request.Status)
	if !target.IsValid() {
		return nil, exceptions.ErrInvalidStatusTransition(string(consultation.Status), request.Status)
	}
	if !consultation.Status.CanTransitionTo(target) {
		return nil, exceptions.ErrInvalidStatusTransition(string(consultation.Status), string(target))
	}

	now := time.Now()
	deactivate := target == models.ConsultationStatusCompleted ||
		target == models.ConsultationStatusCancelled ||
		target == models.ConsultationStatusExpired ||
		target == models.ConsultationStatusRefunded

	var completedAt *time.Time
	if target == models.ConsultationStatusCompleted {
		completedAt = &now
	}

	change := &models.StatusChange{
		From:      consultation.Status,
		To:        target,
		ActorID:   session.UserID,
		Reason:    request.Reason,
		Notes:     request.Notes,
		ChangedAt: now,
	}
	if err := uc.ConsultationRepository.AppendStatusChange(ctx, consultation.ConsultationID, change, target, deactivate, completedAt); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionStatusChanged, session.UserID, "consultation", consultation.ConsultationID, map[string]string{
		"from": string(consultation.Status),
		"to":   string(target),
	})

	return &responses.ConsultationStatusUpdated{
		ConsultationID: consultation.ConsultationID,
		PreviousStatus: string(consultation.Status),
		Status:         string(target),
	}, nil
}

func (uc *consultationUsecase) AppendChatMessage(ctx context.Context, session *models.Session, request *requests.AppendChatMessage) error {
	consultation, err := uc.ConsultationRepository.FindConsultationByID(ctx, request.ConsultationID)
	if err != nil {
		return err
	}
	if consultation == nil {
		return exceptions.ErrConsultationNotFound(nil)
	}

	isParticipant := (session.PatientID != "" && session.PatientID == consultation.PatientID) ||
		(session.DoctorID != "" && session.DoctorID == consultation.DoctorID)
	if !isParticipant {
		return exceptions.ErrNotMatchRoleType(nil)
	}
	if consultation.Status != models.ConsultationStatusInProgress {
		return exceptions.ErrInvalidStatusTransition(string(consultation.Status), string(models.ConsultationStatusInProgress))
	}

	message := &models.ChatMessage{
		SenderID: session.UserID,
		Role:     session.Role,
		Message:  request.Message,
		SentAt:   time.Now(),
	}
	return uc.ConsultationRepository.AppendChatMessage(ctx, consultation.ConsultationID, message)
}

func (uc *consultationUsecase) GetActiveConsultation(ctx context.Context, patientID string) (*models.Consultation, error) {
	return uc.ConsultationRepository.FindActiveConsultationByPatientID(ctx, patientID)
}

func (uc *consultationUsecase) CheckConsultationConflicts(ctx context.Context, patientID string) (*responses.ConsultationConflicts, error) {
	result := new(responses.ConsultationConflicts)

	active, err := uc.ConsultationRepository.FindActiveConsultationByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		result.HasActiveConsultation = true
		result.ActiveConsultationID = active.ConsultationID
	}

	draft, err := uc.SessionStore.GetDraftByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if draft != nil && draft.Status == models.ConsultationStatusPaymentPending {
		result.PendingSessionID = draft.SessionID
		if draft.IsExpired(time.Now()) {
			result.PendingDraftExpired = true
		} else {
			result.HasPendingPaymentDraft = true
		}
	}

	return result, nil
}

// HandlePaymentWebhook applies gateway callbacks to the in-flight payment
// record. Signature verification happens over the raw payload before any
// decoding.
func (uc *consultationUsecase) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	if err := uc.PaymentGateway.VerifyWebhookSignature(payload, signature); err != nil {
		return err
	}

	webhook := new(requests.PaymentWebhook)
	if err := json.Unmarshal(payload, webhook); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	record, err := uc.SessionStore.GetPaymentRecord(ctx, webhook.PaymentID)
	if err != nil {
		return err
	}
	if record == nil {
		uc.Log.Info("consultationUsecase.HandlePaymentWebhook no payment record for webhook, ignoring",
			zap.String(constvars.LoggingPaymentIDKey, webhook.PaymentID),
		)
		return nil
	}
	if record.Status == models.PaymentStatusCompleted || record.Status == models.PaymentStatusRefunded {
		return nil
	}

	switch webhook.Status {
	case "captured", "completed":
		record.Status = models.PaymentStatusCompleted
	case "failed":
		record.Status = models.PaymentStatusFailed
	default:
		return nil
	}

	recordTTL := time.Duration(uc.InternalConfig.Consultation.PaymentRecordExpiryTimeInMinutes) * time.Minute
	return uc.SessionStore.SavePaymentRecord(ctx, record, recordTTL)
}

func (uc *consultationUsecase) RefundConsultation(ctx context.Context, session *models.Session, consultationID, reason string) (*responses.PaymentRefund, error) {
	consultation, err := uc.ConsultationRepository.FindConsultationByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}
	if !consultation.Status.CanTransitionTo(models.ConsultationStatusRefunded) {
		return nil, exceptions.ErrInvalidStatusTransition(string(consultation.Status), string(models.ConsultationStatusRefunded))
	}

	refund, err := uc.PaymentGateway.RefundPayment(ctx, &requests.RefundPayment{
		PaymentID: consultation.PaymentInfo.PaymentID,
		Amount:    consultation.PaymentInfo.Amount,
		Reason:    reason,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	change := &models.StatusChange{
		From:      consultation.Status,
		To:        models.ConsultationStatusRefunded,
		ActorID:   session.UserID,
		Reason:    reason,
		ChangedAt: now,
	}
	if err := uc.ConsultationRepository.AppendStatusChange(ctx, consultation.ConsultationID, change, models.ConsultationStatusRefunded, true, nil); err != nil {
		return nil, err
	}

	uc.recordAudit(ctx, models.AuditActionPaymentRefunded, session.UserID, "consultation", consultation.ConsultationID, map[string]string{
		"refund_id": refund.RefundID,
	})

	return refund, nil
}

func (uc *consultationUsecase) authorizeStatusChange(session *models.Session, consultation *models.Consultation) error {
	switch session.Role {
	case constvars.TenderlyRoleAdmin:
		return nil
	case constvars.TenderlyRoleDoctor:
		if session.DoctorID == consultation.DoctorID {
			return nil
		}
		return exceptions.ErrNotAssignedDoctor(nil)
	case constvars.TenderlyRolePatient:
		if session.PatientID == consultation.PatientID {
			return nil
		}
	}
	return exceptions.ErrNotMatchRoleType(nil)
}

func (uc *consultationUsecase) buildConfirmPaymentResponse(consultation *models.Consultation) *responses.ConfirmPayment {
	return &responses.ConfirmPayment{
		ConsultationID:    consultation.ConsultationID,
		ClinicalSessionID: consultation.ClinicalSessionID,
		DoctorID:          consultation.DoctorID,
		Status:            string(consultation.Status),
		PaymentStatus:     string(consultation.PaymentInfo.PaymentStatus),
	}
}

// recordAudit is fire-and-forget; audit transport failure never aborts the
// primary operation.
func (uc *consultationUsecase) recordAudit(ctx context.Context, action models.AuditAction, actorID, resource, resourceID string, metadata map[string]string) {
	event := &models.AuditEvent{
		Action:     action,
		ActorID:    actorID,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   metadata,
		OccurredAt: time.Now(),
	}
	if err := uc.AuditSink.Record(ctx, event); err != nil {
		uc.Log.Warn("consultationUsecase failed recording audit event",
			zap.String(constvars.LoggingAuditActionKey, string(action)),
			zap.Error(err),
		)
	}
}
