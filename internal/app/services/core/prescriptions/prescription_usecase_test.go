package prescriptions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConsultationRepository struct {
	consultations map[string]*models.Consultation
}

func newFakeConsultationRepository() *fakeConsultationRepository {
	return &fakeConsultationRepository{consultations: make(map[string]*models.Consultation)}
}

func (r *fakeConsultationRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeConsultationRepository) InsertConsultation(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	r.consultations[consultation.ConsultationID] = consultation
	return consultation, nil
}

func (r *fakeConsultationRepository) FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	return r.consultations[consultationID], nil
}

func (r *fakeConsultationRepository) FindConsultationBySessionID(ctx context.Context, sessionID string) (*models.Consultation, error) {
	return nil, nil
}

func (r *fakeConsultationRepository) FindActiveConsultationByPatientID(ctx context.Context, patientID string) (*models.Consultation, error) {
	return nil, nil
}

func (r *fakeConsultationRepository) SetAssessmentResults(ctx context.Context, consultationID string, assessment *models.StructuredAssessment, aiOutput *models.AIAgentOutput) error {
	c := r.consultations[consultationID]
	c.AssessmentInput = assessment
	c.AIAgentOutput = aiOutput
	return nil
}

func (r *fakeConsultationRepository) SetDoctorDiagnosis(ctx context.Context, consultationID string, diagnosis *models.DoctorDiagnosis) error {
	r.consultations[consultationID].DoctorDiagnosis = diagnosis
	return nil
}

func (r *fakeConsultationRepository) SetPrescriptionDraft(ctx context.Context, consultationID string, medications []models.Medication, generalInstructions string) error {
	c := r.consultations[consultationID]
	if c.PrescriptionData == nil {
		c.PrescriptionData = &models.PrescriptionData{}
	}
	c.PrescriptionData.Medications = medications
	c.PrescriptionData.GeneralInstructions = generalInstructions
	return nil
}

func (r *fakeConsultationRepository) SetDraftPDF(ctx context.Context, consultationID string, artifact *models.PDFArtifact) error {
	c := r.consultations[consultationID]
	if c.PrescriptionData == nil {
		c.PrescriptionData = &models.PrescriptionData{}
	}
	c.PrescriptionData.DraftPDF = artifact
	return nil
}

func (r *fakeConsultationRepository) SetSignedPDF(ctx context.Context, consultationID string, artifact *models.PDFArtifact) error {
	c := r.consultations[consultationID]
	if c.PrescriptionData == nil {
		c.PrescriptionData = &models.PrescriptionData{}
	}
	c.PrescriptionData.SignedPDF = artifact
	return nil
}

func (r *fakeConsultationRepository) AppendStatusChange(ctx context.Context, consultationID string, change *models.StatusChange, newStatus models.ConsultationStatus, deactivate bool, completedAt *time.Time) error {
	c := r.consultations[consultationID]
	c.Status = newStatus
	c.StatusHistory = append(c.StatusHistory, *change)
	if deactivate {
		c.IsActive = false
	}
	if completedAt != nil {
		c.CompletedAt = completedAt
	}
	return nil
}

func (r *fakeConsultationRepository) AppendPrescriptionAction(ctx context.Context, consultationID string, entry *models.PrescriptionActionEntry, newStatus models.PrescriptionStatus) error {
	c := r.consultations[consultationID]
	c.PrescriptionStatus = newStatus
	c.PrescriptionHistory = append(c.PrescriptionHistory, *entry)
	return nil
}

func (r *fakeConsultationRepository) AppendChatMessage(ctx context.Context, consultationID string, message *models.ChatMessage) error {
	return nil
}

type fakePrescriptionRepository struct {
	prescriptions []*models.Prescription
}

func (r *fakePrescriptionRepository) InsertPrescription(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	r.prescriptions = append(r.prescriptions, prescription)
	return prescription, nil
}

func (r *fakePrescriptionRepository) FindPrescriptionByConsultationID(ctx context.Context, consultationID string) (*models.Prescription, error) {
	for _, p := range r.prescriptions {
		if p.ConsultationID == consultationID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePrescriptionRepository) UpdatePrescriptionDocumentStatus(ctx context.Context, prescriptionID string, status models.PrescriptionDocumentStatus) error {
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) RenderDraft(consultation *models.Consultation) ([]byte, error) {
	return []byte("draft-pdf"), nil
}

func (fakeRenderer) RenderSigned(consultation *models.Consultation, signature *models.DigitalSignature) ([]byte, error) {
	return []byte("signed-pdf"), nil
}

type fakeSignatureService struct{}

func (fakeSignatureService) Sign(documentHash, signedBy, ipAddress, userAgent string) *models.DigitalSignature {
	return &models.DigitalSignature{
		Algorithm:      "HMAC-SHA256",
		CertificateRef: "test-cert",
		Signature:      "sig-" + documentHash[:8],
		SignedBy:       signedBy,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		SignedAt:       time.Now(),
	}
}

type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (s *fakeStorage) UploadObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error) {
	s.uploads[objectName] = data
	return objectName, nil
}

func (s *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/%s/%s", bucketName, objectName), nil
}

type fakeAuditSink struct {
	events []*models.AuditEvent
}

func (s *fakeAuditSink) Record(ctx context.Context, event *models.AuditEvent) error {
	s.events = append(s.events, event)
	return nil
}

type prescriptionFixture struct {
	usecase       *prescriptionUsecase
	repo          *fakeConsultationRepository
	prescriptions *fakePrescriptionRepository
	storage       *fakeStorage
	audit         *fakeAuditSink
}

func newPrescriptionFixture() *prescriptionFixture {
	repo := newFakeConsultationRepository()
	prescriptions := &fakePrescriptionRepository{}
	storage := newFakeStorage()
	audit := &fakeAuditSink{}

	internalConfig := &config.InternalConfig{
		Minio: config.AppMinio{
			BucketName:                    "tenderly-documents",
			PreSignedUrlExpiryTimeInHours: 24,
		},
	}

	return &prescriptionFixture{
		usecase: &prescriptionUsecase{
			ConsultationRepository: repo,
			PrescriptionRepository: prescriptions,
			Renderer:               fakeRenderer{},
			SignatureService:       fakeSignatureService{},
			Storage:                storage,
			AuditSink:              audit,
			InternalConfig:         internalConfig,
			Log:                    zap.NewNop(),
		},
		repo:          repo,
		prescriptions: prescriptions,
		storage:       storage,
		audit:         audit,
	}
}

func doctorSession() *models.Session {
	return &models.Session{UserID: "USR-9", DoctorID: "DOC-1", Role: constvars.TenderlyRoleDoctor}
}

func seedConsultation(f *prescriptionFixture, prescriptionStatus models.PrescriptionStatus) *models.Consultation {
	c := &models.Consultation{
		ConsultationID:     "CONS-1",
		PatientID:          "PAT-1",
		DoctorID:           "DOC-1",
		Status:             models.ConsultationStatusInProgress,
		PrescriptionStatus: prescriptionStatus,
		IsActive:           true,
	}
	f.repo.consultations[c.ConsultationID] = c
	return c
}

func withPrescriptionContent(c *models.Consultation) *models.Consultation {
	c.DoctorDiagnosis = &models.DoctorDiagnosis{Diagnosis: "bacterial vaginosis", UpdatedBy: "DOC-1"}
	c.PrescriptionData = &models.PrescriptionData{
		Medications: []models.Medication{{
			Name:         "Metronidazole",
			Dosage:       "400mg",
			Frequency:    "twice daily",
			Duration:     "7 days",
			Instructions: "after food",
		}},
	}
	return c
}

func TestUpdateDiagnosis(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned doctor records the diagnosis", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusNotStarted)

		response, err := f.usecase.UpdateDiagnosis(ctx, doctorSession(), &requests.UpdateDiagnosis{
			ConsultationID: "CONS-1",
			Diagnosis:      "bacterial vaginosis",
			ClinicalNotes:  "confirmed on examination",
			ChangesFromAI:  []string{"narrowed differential"},
		})
		require.NoError(t, err)
		assert.Equal(t, string(models.PrescriptionStatusDiagnosisModification), response.PrescriptionStatus)

		require.NotNil(t, c.DoctorDiagnosis)
		assert.Equal(t, "bacterial vaginosis", c.DoctorDiagnosis.Diagnosis)
		assert.Equal(t, "DOC-1", c.DoctorDiagnosis.UpdatedBy)
		require.Len(t, c.PrescriptionHistory, 1)
		assert.Equal(t, models.PrescriptionActionDiagnosisUpdated, c.PrescriptionHistory[0].Action)
	})

	t.Run("other doctors are rejected", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedConsultation(f, models.PrescriptionStatusNotStarted)
		stranger := &models.Session{UserID: "USR-2", DoctorID: "DOC-2", Role: constvars.TenderlyRoleDoctor}

		_, err := f.usecase.UpdateDiagnosis(ctx, stranger, &requests.UpdateDiagnosis{
			ConsultationID: "CONS-1",
			Diagnosis:      "anything",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("sent prescription can no longer be edited", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedConsultation(f, models.PrescriptionStatusSent)

		_, err := f.usecase.UpdateDiagnosis(ctx, doctorSession(), &requests.UpdateDiagnosis{
			ConsultationID: "CONS-1",
			Diagnosis:      "revised",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusPreconditionFailed, customErr.StatusCode)
	})

	t.Run("unknown consultation", func(t *testing.T) {
		f := newPrescriptionFixture()

		_, err := f.usecase.UpdateDiagnosis(ctx, doctorSession(), &requests.UpdateDiagnosis{
			ConsultationID: "CONS-missing",
			Diagnosis:      "anything",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestSaveDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("stores validated medications", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusDiagnosisModification)

		response, err := f.usecase.SaveDraft(ctx, doctorSession(), &requests.SavePrescriptionDraft{
			ConsultationID: "CONS-1",
			Medications: []requests.MedicationInput{{
				Name:         "Metronidazole",
				Dosage:       "400mg",
				Frequency:    "twice daily",
				Duration:     "7 days",
				Instructions: "after food",
			}},
			GeneralInstructions: "avoid alcohol",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, response.MedicationCount)
		assert.Equal(t, string(models.PrescriptionStatusDraft), response.PrescriptionStatus)

		require.NotNil(t, c.PrescriptionData)
		assert.Equal(t, "avoid alcohol", c.PrescriptionData.GeneralInstructions)
	})

	t.Run("empty medication list is rejected", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusDiagnosisModification)

		_, err := f.usecase.SaveDraft(ctx, doctorSession(), &requests.SavePrescriptionDraft{
			ConsultationID: "CONS-1",
			Medications:    []requests.MedicationInput{},
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Nil(t, c.PrescriptionData)
		assert.Equal(t, models.PrescriptionStatusDiagnosisModification, c.PrescriptionStatus)
	})

	t.Run("saving a draft leaves the diagnosis and histories untouched", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusDiagnosisModification)
		c.DoctorDiagnosis = &models.DoctorDiagnosis{Diagnosis: "bacterial vaginosis", UpdatedBy: "DOC-1"}
		c.StatusHistory = []models.StatusChange{{To: models.ConsultationStatusInProgress}}

		_, err := f.usecase.SaveDraft(ctx, doctorSession(), &requests.SavePrescriptionDraft{
			ConsultationID: "CONS-1",
			Medications: []requests.MedicationInput{{
				Name:         "Metronidazole",
				Dosage:       "400mg",
				Frequency:    "twice daily",
				Duration:     "7 days",
				Instructions: "after food",
			}},
		})
		require.NoError(t, err)

		require.NotNil(t, c.DoctorDiagnosis)
		assert.Equal(t, "bacterial vaginosis", c.DoctorDiagnosis.Diagnosis)
		require.Len(t, c.StatusHistory, 1)
		require.Len(t, c.PrescriptionHistory, 1)
		assert.Equal(t, models.PrescriptionActionDraftSaved, c.PrescriptionHistory[0].Action)
	})

	t.Run("incomplete medication rejects the whole draft", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusDiagnosisModification)

		_, err := f.usecase.SaveDraft(ctx, doctorSession(), &requests.SavePrescriptionDraft{
			ConsultationID: "CONS-1",
			Medications: []requests.MedicationInput{{
				Name: "Ibuprofen",
			}},
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Nil(t, c.PrescriptionData, "rejected draft must not be persisted")
	})

	t.Run("draft can be saved repeatedly", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedConsultation(f, models.PrescriptionStatusDraft)

		_, err := f.usecase.SaveDraft(ctx, doctorSession(), &requests.SavePrescriptionDraft{
			ConsultationID: "CONS-1",
			Medications: []requests.MedicationInput{{
				Name:         "Paracetamol",
				Dosage:       "500mg",
				Frequency:    "as needed",
				Duration:     "3 days",
				Instructions: "max 4 per day",
			}},
		})
		require.NoError(t, err)
	})
}

func TestGeneratePreview(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and stores the draft PDF", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := withPrescriptionContent(seedConsultation(f, models.PrescriptionStatusDraft))

		response, err := f.usecase.GeneratePreview(ctx, doctorSession(), "CONS-1")
		require.NoError(t, err)
		assert.Equal(t, string(models.PrescriptionStatusAwaitingReview), response.PrescriptionStatus)
		assert.NotEmpty(t, response.DownloadURL)
		assert.Len(t, response.SHA256Hash, 64)

		require.NotNil(t, c.PrescriptionData.DraftPDF)
		assert.Len(t, f.storage.uploads, 1)
	})

	t.Run("rejects preview before a draft exists", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedConsultation(f, models.PrescriptionStatusNotStarted)

		_, err := f.usecase.GeneratePreview(ctx, doctorSession(), "CONS-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusPreconditionFailed, customErr.StatusCode)
	})

	t.Run("rejects preview without a diagnosis", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := withPrescriptionContent(seedConsultation(f, models.PrescriptionStatusDraft))
		c.DoctorDiagnosis = nil

		_, err := f.usecase.GeneratePreview(ctx, doctorSession(), "CONS-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestSignAndSend(t *testing.T) {
	ctx := context.Background()

	request := &requests.SignAndSendPrescription{
		ConsultationID: "CONS-1",
		IPAddress:      "203.0.113.7",
		UserAgent:      "test-agent",
	}

	t.Run("issues the immutable prescription and delivers it", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := withPrescriptionContent(seedConsultation(f, models.PrescriptionStatusAwaitingReview))

		response, err := f.usecase.SignAndSend(ctx, doctorSession(), request)
		require.NoError(t, err)
		assert.NotEmpty(t, response.PrescriptionID)
		assert.Equal(t, string(models.PrescriptionStatusSent), response.PrescriptionStatus)
		assert.WithinDuration(t, response.IssuedAt.AddDate(0, 0, constvars.PrescriptionValidityInDays), response.ValidUntil, time.Second)

		require.Len(t, f.prescriptions.prescriptions, 1)
		issued := f.prescriptions.prescriptions[0]
		assert.Equal(t, models.PrescriptionDocumentIssued, issued.Status)
		assert.Equal(t, "DOC-1", issued.DigitalSignature.SignedBy)
		assert.Equal(t, "203.0.113.7", issued.DigitalSignature.IPAddress)

		assert.Equal(t, models.PrescriptionStatusSent, c.PrescriptionStatus)
		require.Len(t, c.PrescriptionHistory, 2)
		assert.Equal(t, models.PrescriptionActionSignatureApplied, c.PrescriptionHistory[0].Action)
		assert.Equal(t, models.PrescriptionActionSentToPatient, c.PrescriptionHistory[1].Action)
		require.NotNil(t, c.PrescriptionData.SignedPDF)
	})

	t.Run("signing straight from draft is rejected", func(t *testing.T) {
		f := newPrescriptionFixture()
		withPrescriptionContent(seedConsultation(f, models.PrescriptionStatusDraft))

		_, err := f.usecase.SignAndSend(ctx, doctorSession(), request)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusPreconditionFailed, customErr.StatusCode)
		assert.Empty(t, f.prescriptions.prescriptions)
	})
}

func TestCompleteConsultation(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the consultation after delivery", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusSent)

		response, err := f.usecase.CompleteConsultation(ctx, doctorSession(), "CONS-1")
		require.NoError(t, err)
		assert.Equal(t, string(models.ConsultationStatusCompleted), response.Status)

		assert.Equal(t, models.ConsultationStatusCompleted, c.Status)
		assert.False(t, c.IsActive)
		assert.NotNil(t, c.CompletedAt)
	})

	t.Run("cannot complete before the prescription is sent", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusSigned)

		_, err := f.usecase.CompleteConsultation(ctx, doctorSession(), "CONS-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusPreconditionFailed, customErr.StatusCode)
		assert.True(t, c.IsActive)
	})
}

func TestRequestRevision(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the prescription back for rework", func(t *testing.T) {
		f := newPrescriptionFixture()
		c := seedConsultation(f, models.PrescriptionStatusAwaitingReview)

		err := f.usecase.RequestRevision(ctx, doctorSession(), "CONS-1", "dosage looks wrong")
		require.NoError(t, err)
		assert.Equal(t, models.PrescriptionStatusRevisionRequired, c.PrescriptionStatus)
	})

	t.Run("sent prescriptions cannot be revised", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedConsultation(f, models.PrescriptionStatusSent)

		err := f.usecase.RequestRevision(ctx, doctorSession(), "CONS-1", "too late")
		require.Error(t, err)
	})
}

func TestGetDownloadURL(t *testing.T) {
	ctx := context.Background()

	seedSigned := func(f *prescriptionFixture) *models.Consultation {
		c := seedConsultation(f, models.PrescriptionStatusSent)
		c.PrescriptionData = &models.PrescriptionData{
			SignedPDF: &models.PDFArtifact{
				ObjectName: "signed/CONS-1.pdf",
				SHA256Hash: "abc123",
			},
		}
		return c
	}

	t.Run("patient downloads their own prescription", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedSigned(f)
		patient := &models.Session{UserID: "USR-1", PatientID: "PAT-1", Role: constvars.TenderlyRolePatient}

		response, err := f.usecase.GetDownloadURL(ctx, patient, "CONS-1")
		require.NoError(t, err)
		assert.Contains(t, response.DownloadURL, "signed/CONS-1.pdf")
		assert.Equal(t, "abc123", response.SHA256Hash)
	})

	t.Run("admins can download any prescription", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedSigned(f)
		admin := &models.Session{UserID: "USR-3", Role: constvars.TenderlyRoleAdmin}

		_, err := f.usecase.GetDownloadURL(ctx, admin, "CONS-1")
		require.NoError(t, err)
	})

	t.Run("strangers are rejected", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedSigned(f)
		stranger := &models.Session{UserID: "USR-2", PatientID: "PAT-2", Role: constvars.TenderlyRolePatient}

		_, err := f.usecase.GetDownloadURL(ctx, stranger, "CONS-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("no signed document yet", func(t *testing.T) {
		f := newPrescriptionFixture()
		seedConsultation(f, models.PrescriptionStatusDraft)
		patient := &models.Session{UserID: "USR-1", PatientID: "PAT-1", Role: constvars.TenderlyRolePatient}

		_, err := f.usecase.GetDownloadURL(ctx, patient, "CONS-1")
		require.Error(t, err)
	})
}
