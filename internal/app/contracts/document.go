package contracts

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
)

// PrescriptionRenderer turns consultation data into a PDF byte stream. The
// rendering internals are an external concern; callers only depend on bytes.
type PrescriptionRenderer interface {
	RenderDraft(consultation *models.Consultation) ([]byte, error)
	RenderSigned(consultation *models.Consultation, signature *models.DigitalSignature) ([]byte, error)
}

// SignatureService applies a digital signature over a document hash and
// records the non-repudiation context (actor, IP, user agent).
type SignatureService interface {
	Sign(documentHash, signedBy, ipAddress, userAgent string) *models.DigitalSignature
}
