package responses

import "time"

type DiagnosisUpdated struct {
	ConsultationID     string   `json:"consultationId"`
	PrescriptionStatus string   `json:"prescriptionStatus"`
	ChangesFromAI      []string `json:"changesFromAi,omitempty"`
}

type PrescriptionDraftSaved struct {
	ConsultationID     string `json:"consultationId"`
	PrescriptionStatus string `json:"prescriptionStatus"`
	MedicationCount    int    `json:"medicationCount"`
}

type PrescriptionPreview struct {
	ConsultationID     string `json:"consultationId"`
	PrescriptionStatus string `json:"prescriptionStatus"`
	DownloadURL        string `json:"downloadUrl"`
	SHA256Hash         string `json:"sha256Hash"`
}

type PrescriptionSigned struct {
	PrescriptionID     string    `json:"prescriptionId"`
	ConsultationID     string    `json:"consultationId"`
	PrescriptionStatus string    `json:"prescriptionStatus"`
	DownloadURL        string    `json:"downloadUrl"`
	SHA256Hash         string    `json:"sha256Hash"`
	IssuedAt           time.Time `json:"issuedAt"`
	ValidUntil         time.Time `json:"validUntil"`
}

type ConsultationCompleted struct {
	ConsultationID string    `json:"consultationId"`
	Status         string    `json:"status"`
	CompletedAt    time.Time `json:"completedAt"`
}

type PrescriptionDownload struct {
	DownloadURL string `json:"downloadUrl"`
	SHA256Hash  string `json:"sha256Hash"`
}
