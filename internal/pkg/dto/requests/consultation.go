package requests

type DetailedSymptomsInput struct {
	PrimaryComplaint string            `json:"primary_complaint" validate:"required"`
	DurationDays     int               `json:"duration_days,omitempty" validate:"omitempty,gte=0"`
	Severity         string            `json:"severity,omitempty" validate:"omitempty,oneof=mild moderate severe"`
	Answers          map[string]string `json:"answers,omitempty"`
}

type SelectConsultationType struct {
	SessionID                string                 `json:"sessionId" validate:"required"`
	SelectedConsultationType string                 `json:"selectedConsultationType" validate:"required,consultation_type"`
	DetailedSymptoms         *DetailedSymptomsInput `json:"detailedSymptoms,omitempty"`
}

type ConfirmPayment struct {
	SessionID            string            `json:"sessionId" validate:"required"`
	PaymentID            string            `json:"paymentId" validate:"required"`
	GatewayTransactionID string            `json:"gatewayTransactionId" validate:"required"`
	Signature            string            `json:"signature" validate:"required"`
	PaymentMethod        string            `json:"paymentMethod,omitempty"`
	PaymentMetadata      map[string]string `json:"paymentMetadata,omitempty"`
}

type CollectStructuredAssessment struct {
	ClinicalSessionID   string            `json:"clinicalSessionId" validate:"required"`
	ChiefComplaint      string            `json:"chiefComplaint" validate:"required"`
	SymptomDurationDays int               `json:"symptomDurationDays,omitempty" validate:"omitempty,gte=0"`
	PainLevel           int               `json:"painLevel,omitempty" validate:"omitempty,gte=0,lte=10"`
	MenstrualHistory    map[string]string `json:"menstrualHistory,omitempty"`
	ObstetricHistory    map[string]string `json:"obstetricHistory,omitempty"`
	CurrentMedications  []string          `json:"currentMedications,omitempty"`
	Allergies           []string          `json:"allergies,omitempty"`
	AdditionalAnswers   map[string]string `json:"additionalAnswers,omitempty"`
}

type UpdateConsultationStatus struct {
	ConsultationID string `json:"-" validate:"required"`
	Status         string `json:"status" validate:"required"`
	Reason         string `json:"reason,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type AppendChatMessage struct {
	ConsultationID string `json:"-" validate:"required"`
	Message        string `json:"message" validate:"required"`
}
