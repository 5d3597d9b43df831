package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrescriptionStatus string

const (
	PrescriptionStatusNotStarted            PrescriptionStatus = "not_started"
	PrescriptionStatusDiagnosisModification PrescriptionStatus = "diagnosis_modification"
	PrescriptionStatusDraft                 PrescriptionStatus = "prescription_draft"
	PrescriptionStatusAwaitingReview        PrescriptionStatus = "awaiting_review"
	PrescriptionStatusAwaitingSignature     PrescriptionStatus = "awaiting_signature"
	PrescriptionStatusSigned                PrescriptionStatus = "signed"
	PrescriptionStatusSent                  PrescriptionStatus = "sent"
	PrescriptionStatusRevisionRequired      PrescriptionStatus = "revision_required"
	PrescriptionStatusCancelled             PrescriptionStatus = "cancelled"
)

// allowedPrescriptionTransitions governs the per-consultation prescription
// workflow. Self-loops on diagnosis_modification and prescription_draft allow
// repeated edits before the draft is frozen for review.
var allowedPrescriptionTransitions = map[PrescriptionStatus][]PrescriptionStatus{
	PrescriptionStatusNotStarted:            {PrescriptionStatusDiagnosisModification, PrescriptionStatusCancelled},
	PrescriptionStatusDiagnosisModification: {PrescriptionStatusDiagnosisModification, PrescriptionStatusDraft, PrescriptionStatusCancelled},
	PrescriptionStatusDraft:                 {PrescriptionStatusDraft, PrescriptionStatusAwaitingReview, PrescriptionStatusCancelled},
	PrescriptionStatusAwaitingReview:        {PrescriptionStatusAwaitingSignature, PrescriptionStatusSigned, PrescriptionStatusRevisionRequired, PrescriptionStatusCancelled},
	PrescriptionStatusAwaitingSignature:     {PrescriptionStatusSigned, PrescriptionStatusRevisionRequired, PrescriptionStatusCancelled},
	PrescriptionStatusSigned:                {PrescriptionStatusSent},
	PrescriptionStatusRevisionRequired:      {PrescriptionStatusDraft, PrescriptionStatusCancelled},
}

func (s PrescriptionStatus) CanTransitionTo(target PrescriptionStatus) bool {
	for _, allowed := range allowedPrescriptionTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s PrescriptionStatus) IsTerminal() bool {
	return len(allowedPrescriptionTransitions[s]) == 0
}

type PrescriptionAction string

const (
	PrescriptionActionDiagnosisUpdated  PrescriptionAction = "DIAGNOSIS_UPDATED"
	PrescriptionActionDraftSaved        PrescriptionAction = "DRAFT_SAVED"
	PrescriptionActionPreviewGenerated  PrescriptionAction = "PREVIEW_GENERATED"
	PrescriptionActionSignatureApplied  PrescriptionAction = "SIGNATURE_APPLIED"
	PrescriptionActionSentToPatient     PrescriptionAction = "SENT_TO_PATIENT"
	PrescriptionActionRevisionRequested PrescriptionAction = "REVISION_REQUESTED"
	PrescriptionActionCancelled         PrescriptionAction = "CANCELLED"
	PrescriptionActionCompleted         PrescriptionAction = "CONSULTATION_COMPLETED"
)

// PrescriptionActionEntry is one row of the append-only prescription audit
// trail. Entries are only ever appended, never edited or deleted.
type PrescriptionActionEntry struct {
	Action    PrescriptionAction `json:"action" bson:"action"`
	ActorID   string             `json:"actor_id" bson:"actor_id"`
	IPAddress string             `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	UserAgent string             `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

type Medication struct {
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Frequency    string `json:"frequency" bson:"frequency"`
	Duration     string `json:"duration" bson:"duration"`
	Instructions string `json:"instructions" bson:"instructions"`
}

// Validate reports every missing field so the doctor can fix the draft in one
// round trip.
func (m *Medication) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Dosage) == "" {
		missing = append(missing, "dosage")
	}
	if strings.TrimSpace(m.Frequency) == "" {
		missing = append(missing, "frequency")
	}
	if strings.TrimSpace(m.Duration) == "" {
		missing = append(missing, "duration")
	}
	if strings.TrimSpace(m.Instructions) == "" {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return fmt.Errorf("medication %q missing fields: %s", m.Name, strings.Join(missing, ", "))
	}
	return nil
}

type PDFArtifact struct {
	ObjectName  string    `json:"object_name" bson:"object_name"`
	DownloadURL string    `json:"download_url" bson:"download_url"`
	SHA256Hash  string    `json:"sha256_hash" bson:"sha256_hash"`
	GeneratedAt time.Time `json:"generated_at" bson:"generated_at"`
}

type DigitalSignature struct {
	Algorithm      string    `json:"algorithm" bson:"algorithm"`
	CertificateRef string    `json:"certificate_ref" bson:"certificate_ref"`
	Signature      string    `json:"signature" bson:"signature"`
	SignedBy       string    `json:"signed_by" bson:"signed_by"`
	IPAddress      string    `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	UserAgent      string    `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	SignedAt       time.Time `json:"signed_at" bson:"signed_at"`
}

type DoctorDiagnosis struct {
	Diagnosis     string    `json:"diagnosis" bson:"diagnosis"`
	ClinicalNotes string    `json:"clinical_notes,omitempty" bson:"clinical_notes,omitempty"`
	ChangesFromAI []string  `json:"changes_from_ai,omitempty" bson:"changes_from_ai,omitempty"`
	UpdatedBy     string    `json:"updated_by" bson:"updated_by"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type PrescriptionData struct {
	Medications         []Medication `json:"medications" bson:"medications"`
	GeneralInstructions string       `json:"general_instructions,omitempty" bson:"general_instructions,omitempty"`
	DraftPDF            *PDFArtifact `json:"draft_pdf,omitempty" bson:"draft_pdf,omitempty"`
	SignedPDF           *PDFArtifact `json:"signed_pdf,omitempty" bson:"signed_pdf,omitempty"`
}

type PrescriptionDocumentStatus string

const (
	PrescriptionDocumentIssued    PrescriptionDocumentStatus = "issued"
	PrescriptionDocumentDispensed PrescriptionDocumentStatus = "dispensed"
	PrescriptionDocumentExpired   PrescriptionDocumentStatus = "expired"
	PrescriptionDocumentCancelled PrescriptionDocumentStatus = "cancelled"
)

// Prescription is the immutable artifact produced by signAndSendPrescription.
// Only Status may change after creation (issued -> dispensed/expired/cancelled).
type Prescription struct {
	ID               primitive.ObjectID         `json:"-" bson:"_id,omitempty"`
	PrescriptionID   string                     `json:"prescription_id" bson:"prescription_id"`
	ConsultationID   string                     `json:"consultation_id" bson:"consultation_id"`
	PatientID        string                     `json:"patient_id" bson:"patient_id"`
	DoctorID         string                     `json:"doctor_id" bson:"doctor_id"`
	Medications      []Medication               `json:"medications" bson:"medications"`
	Diagnosis        string                     `json:"diagnosis" bson:"diagnosis"`
	DigitalSignature DigitalSignature           `json:"digital_signature" bson:"digital_signature"`
	PDFDownloadURL   string                     `json:"pdf_download_url" bson:"pdf_download_url"`
	PDFHash          string                     `json:"pdf_hash" bson:"pdf_hash"`
	Status           PrescriptionDocumentStatus `json:"status" bson:"status"`
	IssuedAt         time.Time                  `json:"issued_at" bson:"issued_at"`
	ValidUntil       time.Time                  `json:"valid_until" bson:"valid_until"`
}
