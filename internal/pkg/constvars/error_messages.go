package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"numeric":           "must be a number",
	"oneof":             "must be one of [%s]",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"lt":                "must be less than %s",
	"lte":               "must be less than or equal to %s",
	"url":               "must be a valid URL",
	"uuid":              "must be a valid UUID",
	"dive":              "contains an invalid element",
	"consultation_type": "must be one of 'chat', 'video' or 'emergency'",
	"shift_type":        "must be either 'morning' or 'evening'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error kinds exposed to clients. These are stable identifiers a client can
// branch on, independent of the human-readable message.
const (
	ErrKindConflict            = "CONFLICT"
	ErrKindPrecondition        = "PRECONDITION_FAILED"
	ErrKindInvalidTransition   = "INVALID_TRANSITION"
	ErrKindPaymentVerification = "PAYMENT_VERIFICATION_FAILED"
	ErrKindPaymentExpired      = "PAYMENT_EXPIRED"
	ErrKindInvalidSignature    = "INVALID_SIGNATURE"
	ErrKindIncompleteData      = "INCOMPLETE_DATA"
	ErrKindNotFound            = "NOT_FOUND"
	ErrKindValidation          = "VALIDATION_FAILED"
	ErrKindUnauthorized        = "UNAUTHORIZED"
	ErrKindForbidden           = "FORBIDDEN"
	ErrKindInternal            = "INTERNAL"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"

	ErrClientActiveConsultationExists  = "you already have an active consultation: %s"
	ErrClientPendingPaymentExists      = "you already have a consultation awaiting payment for another session"
	ErrClientConsultationNotFound      = "consultation not found"
	ErrClientDraftNotFound             = "no consultation draft found for this session, please select a consultation type first"
	ErrClientInvalidStatusTransition   = "cannot move consultation from '%s' to '%s'"
	ErrClientPaymentNotCompleted       = "payment for this consultation is not completed yet"
	ErrClientPaymentVerificationFailed = "we could not verify your payment, please try again"
	ErrClientPaymentExpired            = "your payment session expired, please select a consultation type again"
	ErrClientInvalidSignature          = "payment signature verification failed"
	ErrClientIncompletePrescription    = "prescription is missing required clinical data"
	ErrClientPrescriptionStateInvalid  = "prescription workflow does not allow this action from state '%s'"
	ErrClientNotAssignedDoctor         = "only the assigned doctor may perform this action"
	ErrClientNoActiveShift             = "no doctor is on duty at the moment"
	ErrClientShiftNotFound             = "doctor shift not found"
	ErrClientInvalidShiftWindow        = "shift start hour must be before end hour, both within 0-23"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed  = "validation failed"
	ErrDevServerProcess     = "internal error while processing request"

	ErrDevServerDeadlineExceeded = "processing exceeded its deadline"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleDoesntMatch       = "request done by user with different role"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBDuplicateActiveDocument  = "conditional write rejected: duplicate active document for patient"

	// Redis messages
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue '%s'"

	// HTTP collaborator messages
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode %s response"

	// Domain messages
	ErrDevActiveConsultationExists  = "patient already has an active consultation"
	ErrDevPendingPaymentDraftExists = "unexpired pending-payment draft exists for a different session"
	ErrDevConsultationNotFound      = "consultation not exists in our system"
	ErrDevDraftNotFoundOrExpired    = "consultation draft not found or expired"
	ErrDevInvalidStatusTransition   = "status transition not in allowed-edges table"
	ErrDevPaymentNotCompleted       = "operation requires completed payment"
	ErrDevPaymentVerification       = "payment gateway reported non-success status"
	ErrDevPaymentExpired            = "payment order expired before confirmation"
	ErrDevSignatureMismatch         = "HMAC signature mismatch"
	ErrDevIncompletePrescription    = "medication list empty or missing required fields"
	ErrDevPrescriptionStateInvalid  = "prescription sub-state machine forbids this action"
	ErrDevActorNotAssignedDoctor    = "actor is not the doctor assigned to the consultation"
	ErrDevNoActiveShift             = "no active shift window covers the current hour"
	ErrDevShiftNotFound             = "doctor shift not exists in our system"
	ErrDevInvalidShiftWindow        = "shift hours out of range or start >= end"
	ErrDevAIAgentCall               = "AI diagnosis service call failed"
	ErrDevAIAgentSchema             = "AI diagnosis payload has unsupported schema version"
)
