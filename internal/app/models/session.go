package models

import (
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
)

// Session is the authenticated caller identity resolved from the bearer token.
type Session struct {
	UserID    string `json:"user_id"`
	PatientID string `json:"patient_id,omitempty"`
	DoctorID  string `json:"doctor_id,omitempty"`
	Role      string `json:"role"`
	Email     string `json:"email,omitempty"`
}

type DetailedSymptoms struct {
	PrimaryComplaint string            `json:"primary_complaint" bson:"primary_complaint"`
	DurationDays     int               `json:"duration_days,omitempty" bson:"duration_days,omitempty"`
	Severity         string            `json:"severity,omitempty" bson:"severity,omitempty"`
	Answers          map[string]string `json:"answers,omitempty" bson:"answers,omitempty"`
}

type StructuredAssessment struct {
	ChiefComplaint      string            `json:"chief_complaint" bson:"chief_complaint"`
	SymptomDurationDays int               `json:"symptom_duration_days,omitempty" bson:"symptom_duration_days,omitempty"`
	PainLevel           int               `json:"pain_level,omitempty" bson:"pain_level,omitempty"`
	MenstrualHistory    map[string]string `json:"menstrual_history,omitempty" bson:"menstrual_history,omitempty"`
	ObstetricHistory    map[string]string `json:"obstetric_history,omitempty" bson:"obstetric_history,omitempty"`
	CurrentMedications  []string          `json:"current_medications,omitempty" bson:"current_medications,omitempty"`
	Allergies           []string          `json:"allergies,omitempty" bson:"allergies,omitempty"`
	AdditionalAnswers   map[string]string `json:"additional_answers,omitempty" bson:"additional_answers,omitempty"`
}

// ConsultationDraft is the ephemeral pre-payment record held in the session
// store. It expires via TTL when abandoned and is deleted once promoted into
// a permanent Consultation.
type ConsultationDraft struct {
	SessionID        string                     `json:"session_id"`
	PatientID        string                     `json:"patient_id"`
	ConsultationType constvars.ConsultationType `json:"consultation_type"`
	DetailedSymptoms *DetailedSymptoms          `json:"detailed_symptoms,omitempty"`
	PaymentID        string                     `json:"payment_id"`
	OrderID          string                     `json:"order_id"`
	Status           ConsultationStatus         `json:"status"`
	CreatedAt        time.Time                  `json:"created_at"`
	ExpiresAt        time.Time                  `json:"expires_at"`
}

func (d *ConsultationDraft) IsExpired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}
