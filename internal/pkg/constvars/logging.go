package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingRequestKey    = "request"
	LoggingResponseKey   = "response"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingQueryKey      = "query"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"
	LoggingErrorKindKey  = "error_kind"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"

	LoggingPatientIDKey          = "patient_id"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingSessionIDKey          = "session_id"
	LoggingConsultationIDKey     = "consultation_id"
	LoggingClinicalSessionIDKey  = "clinical_session_id"
	LoggingPaymentIDKey          = "payment_id"
	LoggingOrderIDKey            = "order_id"
	LoggingPrescriptionIDKey     = "prescription_id"
	LoggingShiftIDKey            = "shift_id"
	LoggingStatusKey             = "status"
	LoggingPrescriptionStatusKey = "prescription_status"
	LoggingAuditActionKey        = "audit_action"
	LoggingQueueNameKey          = "queue_name"
	LoggingBucketNameKey         = "bucket_name"
	LoggingObjectNameKey         = "object_name"
)
