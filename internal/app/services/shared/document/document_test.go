package document

import (
	"testing"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConsultation() *models.Consultation {
	return &models.Consultation{
		ConsultationID: "CONS-1",
		DoctorDiagnosis: &models.DoctorDiagnosis{
			Diagnosis: "bacterial vaginosis",
		},
		PrescriptionData: &models.PrescriptionData{
			Medications: []models.Medication{{
				Name:         "Metronidazole",
				Dosage:       "400mg",
				Frequency:    "twice daily",
				Duration:     "7 days",
				Instructions: "after food",
			}},
			GeneralInstructions: "avoid alcohol",
		},
	}
}

func TestHMACSignatureService(t *testing.T) {
	service := NewHMACSignatureService("signing-key", "cert-001")

	t.Run("signature binds the hash to the signer", func(t *testing.T) {
		a := service.Sign("hash-1", "DOC-1", "203.0.113.7", "agent")
		b := service.Sign("hash-1", "DOC-1", "203.0.113.7", "agent")
		assert.Equal(t, a.Signature, b.Signature, "same input must produce the same signature")

		otherHash := service.Sign("hash-2", "DOC-1", "203.0.113.7", "agent")
		assert.NotEqual(t, a.Signature, otherHash.Signature)

		otherSigner := service.Sign("hash-1", "DOC-2", "203.0.113.7", "agent")
		assert.NotEqual(t, a.Signature, otherSigner.Signature)
	})

	t.Run("non repudiation context is recorded", func(t *testing.T) {
		signature := service.Sign("hash-1", "DOC-1", "203.0.113.7", "agent")
		assert.Equal(t, "HMAC-SHA256", signature.Algorithm)
		assert.Equal(t, "cert-001", signature.CertificateRef)
		assert.Equal(t, "DOC-1", signature.SignedBy)
		assert.Equal(t, "203.0.113.7", signature.IPAddress)
		assert.False(t, signature.SignedAt.IsZero())
	})

	t.Run("different keys produce different signatures", func(t *testing.T) {
		other := NewHMACSignatureService("other-key", "cert-001")
		a := service.Sign("hash-1", "DOC-1", "", "")
		b := other.Sign("hash-1", "DOC-1", "", "")
		assert.NotEqual(t, a.Signature, b.Signature)
	})
}

func TestPDFRenderer(t *testing.T) {
	renderer := NewPDFRenderer("Tenderly Care")

	t.Run("draft renders a PDF document", func(t *testing.T) {
		data, err := renderer.RenderDraft(sampleConsultation())
		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	})

	t.Run("signed render includes the signature block", func(t *testing.T) {
		service := NewHMACSignatureService("signing-key", "cert-001")
		signature := service.Sign("hash-1", "DOC-1", "203.0.113.7", "agent")

		data, err := renderer.RenderSigned(sampleConsultation(), signature)
		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}
