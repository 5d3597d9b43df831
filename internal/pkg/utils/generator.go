package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateConsultationID() string {
	return "CONS-" + uuid.New().String()
}

func GenerateClinicalSessionID() string {
	return "CLIN-" + uuid.New().String()
}

func GeneratePrescriptionID() string {
	return "RX-" + uuid.New().String()
}

func GenerateShiftID() string {
	return "SHIFT-" + uuid.New().String()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateObjectName(prefix, consultationID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, consultationID, timestamp, fileExtension)
}
