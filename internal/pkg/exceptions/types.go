package exceptions

import (
	"fmt"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrKindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrKindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrKindInternal, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrKindUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrKindUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrNotMatchRoleType = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrKindForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthRoleDoesntMatch)
	}

	// Consultation lifecycle
	ErrActiveConsultationExists = func(activeConsultationID string) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrKindConflict, fmt.Sprintf(constvars.ErrClientActiveConsultationExists, activeConsultationID), constvars.ErrDevActiveConsultationExists)
	}
	ErrPendingPaymentDraftExists = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrKindConflict, constvars.ErrClientPendingPaymentExists, constvars.ErrDevPendingPaymentDraftExists)
	}
	ErrConsultationNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrClientConsultationNotFound, constvars.ErrDevConsultationNotFound)
	}
	ErrDraftNotFoundOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrClientDraftNotFound, constvars.ErrDevDraftNotFoundOrExpired)
	}
	ErrInvalidStatusTransition = func(from, to string) *CustomError {
		return WrapWithoutError(constvars.StatusUnprocessableEntity, constvars.ErrKindInvalidTransition, fmt.Sprintf(constvars.ErrClientInvalidStatusTransition, from, to), constvars.ErrDevInvalidStatusTransition)
	}
	ErrPaymentNotCompleted = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusPreconditionFailed, constvars.ErrKindPrecondition, constvars.ErrClientPaymentNotCompleted, constvars.ErrDevPaymentNotCompleted)
	}

	// Payment provider
	ErrPaymentVerificationFailed = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusPaymentRequired, constvars.ErrKindPaymentVerification, constvars.ErrClientPaymentVerificationFailed, constvars.ErrDevPaymentVerification)
	}
	ErrPaymentExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGone, constvars.ErrKindPaymentExpired, constvars.ErrClientPaymentExpired, constvars.ErrDevPaymentExpired)
	}
	ErrInvalidSignature = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrKindInvalidSignature, constvars.ErrClientInvalidSignature, constvars.ErrDevSignatureMismatch)
	}

	// Prescription workflow
	ErrIncompletePrescriptionData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrKindIncompleteData, constvars.ErrClientIncompletePrescription, constvars.ErrDevIncompletePrescription)
	}
	ErrPrescriptionStateNotAllowed = func(currentState string) *CustomError {
		return WrapWithoutError(constvars.StatusPreconditionFailed, constvars.ErrKindPrecondition, fmt.Sprintf(constvars.ErrClientPrescriptionStateInvalid, currentState), constvars.ErrDevPrescriptionStateInvalid)
	}
	ErrNotAssignedDoctor = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrKindForbidden, constvars.ErrClientNotAssignedDoctor, constvars.ErrDevActorNotAssignedDoctor)
	}

	// Doctor shifts
	ErrNoActiveShift = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrClientNoActiveShift, constvars.ErrDevNoActiveShift)
	}
	ErrShiftNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrKindNotFound, constvars.ErrClientShiftNotFound, constvars.ErrDevShiftNotFound)
	}
	ErrInvalidShiftWindow = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrKindValidation, constvars.ErrClientInvalidShiftWindow, constvars.ErrDevInvalidShiftWindow)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// HTTP collaborators
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrKindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrKindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrKindInternal, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrAIAgentCall = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAIAgentCall)
	}
	ErrAIAgentSchema = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrKindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAIAgentSchema)
	}
)
