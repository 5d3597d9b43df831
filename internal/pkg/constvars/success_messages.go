package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Consultation lifecycle messages
	ConsultationTypeSelectedSuccess  = "consultation type selected, awaiting payment"
	PaymentConfirmedSuccess          = "payment confirmed, consultation created"
	AssessmentCollectedSuccess       = "clinical assessment collected successfully"
	ConsultationStatusUpdatedSuccess = "consultation status updated successfully"
	ConsultationConflictCheckSuccess = "consultation conflict check completed"
	ChatMessageAppendedSuccess       = "chat message appended successfully"
	RefundProcessedSuccess           = "refund processed successfully"

	// Prescription workflow messages
	DiagnosisUpdatedSuccess        = "diagnosis updated successfully"
	PrescriptionDraftSavedSuccess  = "prescription draft saved successfully"
	PrescriptionPreviewSuccess     = "prescription preview generated successfully"
	PrescriptionSignedSentSuccess  = "prescription signed and sent to patient"
	ConsultationCompletedSuccess   = "consultation completed successfully"
	RevisionRequestedSuccess       = "prescription revision requested"
	PrescriptionDownloadURLSuccess = "prescription download URL generated"

	// Doctor shift messages
	ShiftCreatedSuccess       = "doctor shift created successfully"
	ShiftListSuccess          = "doctor shifts retrieved successfully"
	ShiftUpdatedSuccess       = "doctor shift updated successfully"
	CurrentDoctorGetSuccess   = "current on-duty doctor resolved successfully"
	CurrentDoctorForceRefresh = "current on-duty doctor refreshed successfully"

	// Payment messages
	PaymentWebhookAcceptedSuccess = "payment webhook processed"
)
