package utils

import (
	"strings"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
)

func SanitizeSelectConsultationTypeRequest(input *requests.SelectConsultationType) {
	input.SessionID = strings.TrimSpace(input.SessionID)
	input.SelectedConsultationType = strings.TrimSpace(strings.ToLower(input.SelectedConsultationType))
}

func SanitizeConfirmPaymentRequest(input *requests.ConfirmPayment) {
	input.SessionID = strings.TrimSpace(input.SessionID)
	input.PaymentID = strings.TrimSpace(input.PaymentID)
	input.GatewayTransactionID = strings.TrimSpace(input.GatewayTransactionID)
	input.Signature = strings.TrimSpace(input.Signature)
	input.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
}

func SanitizeUpdateDiagnosisRequest(input *requests.UpdateDiagnosis) {
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.ClinicalNotes = strings.TrimSpace(input.ClinicalNotes)
}

func SanitizeSavePrescriptionDraftRequest(input *requests.SavePrescriptionDraft) {
	for i := range input.Medications {
		input.Medications[i].Name = strings.TrimSpace(input.Medications[i].Name)
		input.Medications[i].Dosage = strings.TrimSpace(input.Medications[i].Dosage)
		input.Medications[i].Frequency = strings.TrimSpace(input.Medications[i].Frequency)
		input.Medications[i].Duration = strings.TrimSpace(input.Medications[i].Duration)
		input.Medications[i].Instructions = strings.TrimSpace(input.Medications[i].Instructions)
	}
	input.GeneralInstructions = strings.TrimSpace(input.GeneralInstructions)
}

func SanitizeCreateDoctorShiftRequest(input *requests.CreateDoctorShift) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.ShiftType = strings.TrimSpace(strings.ToLower(input.ShiftType))
}
