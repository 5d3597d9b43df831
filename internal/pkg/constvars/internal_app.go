package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TNDRLY_SVC_"
)

const (
	TenderlyRolePatient = "Patient"
	TenderlyRoleDoctor  = "Doctor"
	TenderlyRoleAdmin   = "Admin"
)

// ConsultationType represents the purchasable consultation products.
type ConsultationType string

const (
	ConsultationTypeChat      ConsultationType = "chat"
	ConsultationTypeVideo     ConsultationType = "video"
	ConsultationTypeEmergency ConsultationType = "emergency"
)

// ConsultationTypeToPrice maps each consultation type to its base price.
var ConsultationTypeToPrice = map[ConsultationType]int{
	ConsultationTypeChat:      150,
	ConsultationTypeVideo:     250,
	ConsultationTypeEmergency: 400,
}

// KnownConsultationTypes lists all supported consultation types. Useful for validation.
var KnownConsultationTypes = []ConsultationType{
	ConsultationTypeChat,
	ConsultationTypeVideo,
	ConsultationTypeEmergency,
}

const (
	DefaultCurrency = "INR"
)

// Redis key formats. The lock key guards payment confirmation per session,
// the others hold draft and payment state with TTLs.
const (
	RedisKeyConsultationDraftFormat = "consultation:draft:%s"
	RedisKeyPatientDraftFormat      = "consultation:draft:patient:%s"
	RedisKeyPaymentRecordFormat     = "payment:record:%s"
	RedisKeyPaymentLockFormat       = "payment:confirm:lock:%s"
	RedisKeyActiveDoctor            = "doctor-shift:active-doctor"
)

const (
	ShiftTypeMorning = "morning"
	ShiftTypeEvening = "evening"
	ShiftTypeCustom  = "custom"
)

const (
	DefaultMorningShiftStartHour = 6
	DefaultMorningShiftEndHour   = 14
	DefaultEveningShiftStartHour = 14
	DefaultEveningShiftEndHour   = 22
)

// Prescription validity window from the moment of signing.
const (
	PrescriptionValidityInDays = 30
)
