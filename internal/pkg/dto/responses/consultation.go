package responses

import "time"

type SelectConsultationType struct {
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	Amount     int       `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	PaymentURL string    `json:"paymentUrl,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type ConfirmPayment struct {
	ConsultationID    string `json:"consultationId"`
	ClinicalSessionID string `json:"clinicalSessionId"`
	DoctorID          string `json:"doctorId"`
	Status            string `json:"status"`
	PaymentStatus     string `json:"paymentStatus"`
}

type StructuredAssessmentResult struct {
	ConsultationID     string   `json:"consultationId"`
	ClinicalSessionID  string   `json:"clinicalSessionId"`
	Status             string   `json:"status"`
	SchemaVersion      string   `json:"schemaVersion"`
	Diagnosis          string   `json:"diagnosis"`
	Confidence         float64  `json:"confidence"`
	Recommendations    []string `json:"recommendations,omitempty"`
	SuggestedTests     []string `json:"suggestedTests,omitempty"`
	SeverityAssessment string   `json:"severityAssessment,omitempty"`
}

type ConsultationStatusUpdated struct {
	ConsultationID string `json:"consultationId"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
}

type ConsultationConflicts struct {
	HasActiveConsultation  bool   `json:"hasActiveConsultation"`
	ActiveConsultationID   string `json:"activeConsultationId,omitempty"`
	HasPendingPaymentDraft bool   `json:"hasPendingPaymentDraft"`
	PendingSessionID       string `json:"pendingSessionId,omitempty"`
	PendingDraftExpired    bool   `json:"pendingDraftExpired"`
}
