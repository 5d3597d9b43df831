package models

import (
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConsultationStatus string

const (
	ConsultationStatusDraft                      ConsultationStatus = "draft"
	ConsultationStatusPaymentPending             ConsultationStatus = "payment_pending"
	ConsultationStatusPaymentConfirmed           ConsultationStatus = "payment_confirmed"
	ConsultationStatusClinicalAssessmentPending  ConsultationStatus = "clinical_assessment_pending"
	ConsultationStatusClinicalAssessmentComplete ConsultationStatus = "clinical_assessment_complete"
	ConsultationStatusDoctorReviewPending        ConsultationStatus = "doctor_review_pending"
	ConsultationStatusDoctorAssigned             ConsultationStatus = "doctor_assigned"
	ConsultationStatusInProgress                 ConsultationStatus = "in_progress"
	ConsultationStatusOnHold                     ConsultationStatus = "on_hold"
	ConsultationStatusCompleted                  ConsultationStatus = "completed"
	ConsultationStatusCancelled                  ConsultationStatus = "cancelled"
	ConsultationStatusExpired                    ConsultationStatus = "expired"
	ConsultationStatusRefunded                   ConsultationStatus = "refunded"
)

// allowedStatusTransitions is the single source of truth for the consultation
// state machine. Every status write must be validated against it.
var allowedStatusTransitions = map[ConsultationStatus][]ConsultationStatus{
	ConsultationStatusDraft:                      {ConsultationStatusPaymentPending, ConsultationStatusCancelled},
	ConsultationStatusPaymentPending:             {ConsultationStatusPaymentConfirmed, ConsultationStatusCancelled, ConsultationStatusExpired},
	ConsultationStatusPaymentConfirmed:           {ConsultationStatusClinicalAssessmentPending, ConsultationStatusCancelled, ConsultationStatusRefunded},
	ConsultationStatusClinicalAssessmentPending:  {ConsultationStatusClinicalAssessmentComplete, ConsultationStatusCancelled},
	ConsultationStatusClinicalAssessmentComplete: {ConsultationStatusDoctorReviewPending, ConsultationStatusDoctorAssigned},
	ConsultationStatusDoctorReviewPending:        {ConsultationStatusDoctorAssigned, ConsultationStatusCancelled},
	ConsultationStatusDoctorAssigned:             {ConsultationStatusInProgress, ConsultationStatusCancelled},
	ConsultationStatusInProgress:                 {ConsultationStatusCompleted, ConsultationStatusOnHold, ConsultationStatusCancelled},
	ConsultationStatusOnHold:                     {ConsultationStatusInProgress, ConsultationStatusCancelled},
}

func (s ConsultationStatus) CanTransitionTo(target ConsultationStatus) bool {
	for _, allowed := range allowedStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s ConsultationStatus) IsTerminal() bool {
	return len(allowedStatusTransitions[s]) == 0
}

func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationStatusDraft, ConsultationStatusPaymentPending, ConsultationStatusPaymentConfirmed,
		ConsultationStatusClinicalAssessmentPending, ConsultationStatusClinicalAssessmentComplete,
		ConsultationStatusDoctorReviewPending, ConsultationStatusDoctorAssigned, ConsultationStatusInProgress,
		ConsultationStatusOnHold, ConsultationStatusCompleted, ConsultationStatusCancelled,
		ConsultationStatusExpired, ConsultationStatusRefunded:
		return true
	}
	return false
}

type StatusChange struct {
	From      ConsultationStatus `json:"from" bson:"from"`
	To        ConsultationStatus `json:"to" bson:"to"`
	ActorID   string             `json:"actor_id" bson:"actor_id"`
	Reason    string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	ChangedAt time.Time          `json:"changed_at" bson:"changed_at"`
}

type ChatMessage struct {
	SenderID string    `json:"sender_id" bson:"sender_id"`
	Role     string    `json:"role" bson:"role"`
	Message  string    `json:"message" bson:"message"`
	SentAt   time.Time `json:"sent_at" bson:"sent_at"`
}

type PaymentInfo struct {
	PaymentID            string        `json:"payment_id" bson:"payment_id"`
	OrderID              string        `json:"order_id" bson:"order_id"`
	GatewayTransactionID string        `json:"gateway_transaction_id,omitempty" bson:"gateway_transaction_id,omitempty"`
	PaymentMethod        string        `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	Amount               int           `json:"amount" bson:"amount"`
	Currency             string        `json:"currency" bson:"currency"`
	PaymentStatus        PaymentStatus `json:"payment_status" bson:"payment_status"`
	ConfirmedAt          *time.Time    `json:"confirmed_at,omitempty" bson:"confirmed_at,omitempty"`
}

type Consultation struct {
	ID                  primitive.ObjectID         `json:"-" bson:"_id,omitempty"`
	ConsultationID      string                     `json:"consultation_id" bson:"consultation_id"`
	ClinicalSessionID   string                     `json:"clinical_session_id" bson:"clinical_session_id"`
	SessionID           string                     `json:"session_id" bson:"session_id"`
	PatientID           string                     `json:"patient_id" bson:"patient_id"`
	DoctorID            string                     `json:"doctor_id" bson:"doctor_id"`
	ConsultationType    constvars.ConsultationType `json:"consultation_type" bson:"consultation_type"`
	Status              ConsultationStatus         `json:"status" bson:"status"`
	PrescriptionStatus  PrescriptionStatus         `json:"prescription_status" bson:"prescription_status"`
	PaymentInfo         PaymentInfo                `json:"payment_info" bson:"payment_info"`
	DetailedSymptoms    *DetailedSymptoms          `json:"detailed_symptoms,omitempty" bson:"detailed_symptoms,omitempty"`
	AssessmentInput     *StructuredAssessment      `json:"structured_assessment_input,omitempty" bson:"structured_assessment_input,omitempty"`
	AIAgentOutput       *AIAgentOutput             `json:"ai_agent_output,omitempty" bson:"ai_agent_output,omitempty"`
	DoctorDiagnosis     *DoctorDiagnosis           `json:"doctor_diagnosis,omitempty" bson:"doctor_diagnosis,omitempty"`
	PrescriptionData    *PrescriptionData          `json:"prescription_data,omitempty" bson:"prescription_data,omitempty"`
	ChatHistory         []ChatMessage              `json:"chat_history,omitempty" bson:"chat_history,omitempty"`
	StatusHistory       []StatusChange             `json:"status_history" bson:"status_history"`
	PrescriptionHistory []PrescriptionActionEntry  `json:"prescription_history,omitempty" bson:"prescription_history,omitempty"`
	IsActive            bool                       `json:"is_active" bson:"is_active"`
	CreatedAt           time.Time                  `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at" bson:"updated_at"`
	CompletedAt         *time.Time                 `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}
