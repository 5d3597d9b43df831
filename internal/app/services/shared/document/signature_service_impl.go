package document

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
)

type hmacSignatureService struct {
	SigningKey     string
	CertificateRef string
}

// NewHMACSignatureService signs document hashes with a service-held key. The
// certificate reference identifies the issuing practice in the rendered
// prescription footer.
func NewHMACSignatureService(signingKey, certificateRef string) contracts.SignatureService {
	return &hmacSignatureService{
		SigningKey:     signingKey,
		CertificateRef: certificateRef,
	}
}

func (s *hmacSignatureService) Sign(documentHash, signedBy, ipAddress, userAgent string) *models.DigitalSignature {
	mac := hmac.New(sha256.New, []byte(s.SigningKey))
	mac.Write([]byte(documentHash))
	mac.Write([]byte(signedBy))

	return &models.DigitalSignature{
		Algorithm:      "HMAC-SHA256",
		CertificateRef: s.CertificateRef,
		Signature:      hex.EncodeToString(mac.Sum(nil)),
		SignedBy:       signedBy,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		SignedAt:       time.Now(),
	}
}
