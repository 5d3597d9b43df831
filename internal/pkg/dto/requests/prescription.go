package requests

type UpdateDiagnosis struct {
	ConsultationID string   `json:"-" validate:"required"`
	Diagnosis      string   `json:"diagnosis" validate:"required"`
	ClinicalNotes  string   `json:"clinicalNotes,omitempty"`
	ChangesFromAI  []string `json:"changesFromAi,omitempty"`
	IPAddress      string   `json:"-"`
	UserAgent      string   `json:"-"`
}

type MedicationInput struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
}

type SavePrescriptionDraft struct {
	ConsultationID      string            `json:"-" validate:"required"`
	Medications         []MedicationInput `json:"medications" validate:"required,min=1,dive"`
	GeneralInstructions string            `json:"generalInstructions,omitempty"`
	IPAddress           string            `json:"-"`
	UserAgent           string            `json:"-"`
}

type SignAndSendPrescription struct {
	ConsultationID string `json:"-" validate:"required"`
	IPAddress      string `json:"-"`
	UserAgent      string `json:"-"`
}
