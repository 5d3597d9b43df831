package models

import "time"

type AuditAction string

const (
	AuditActionConsultationTypeSelected AuditAction = "consultation.type_selected"
	AuditActionPaymentConfirmed         AuditAction = "consultation.payment_confirmed"
	AuditActionAssessmentCollected      AuditAction = "consultation.assessment_collected"
	AuditActionStatusChanged            AuditAction = "consultation.status_changed"
	AuditActionConsultationCompleted    AuditAction = "consultation.completed"
	AuditActionDiagnosisUpdated         AuditAction = "prescription.diagnosis_updated"
	AuditActionPrescriptionDraftSaved   AuditAction = "prescription.draft_saved"
	AuditActionPrescriptionPreviewed    AuditAction = "prescription.preview_generated"
	AuditActionPrescriptionSigned       AuditAction = "prescription.signature_applied"
	AuditActionPrescriptionSent         AuditAction = "prescription.sent_to_patient"
	AuditActionPaymentRefunded          AuditAction = "payment.refunded"
	AuditActionShiftCreated             AuditAction = "shift.created"
	AuditActionShiftUpdated             AuditAction = "shift.updated"
)

// AuditEvent is the single encoding for "what happened". Metadata must never
// carry PII; identifiers only.
type AuditEvent struct {
	Action     AuditAction       `json:"action"`
	ActorID    string            `json:"actor_id"`
	Resource   string            `json:"resource"`
	ResourceID string            `json:"resource_id"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
