package config

type InternalConfig struct {
	App            App
	JWT            AppJWT
	Minio          AppMinio
	RabbitMQ       AppRabbitMQ
	MongoDB        AppMongoDB
	Consultation   AppConsultation
	Prescription   AppPrescription
	DoctorShift    AppDoctorShift
	PaymentGateway AppPaymentGateway
	AIAgent        AppAIAgent
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                     string
	PreSignedUrlExpiryTimeInHours  int
}

type AppRabbitMQ struct {
	AuditQueue string
}

type AppMongoDB struct {
	DbName string
}

type AppConsultation struct {
	DraftExpiryTimeInMinutes         int
	PaymentRecordExpiryTimeInMinutes int
	PaymentLockExpiryTimeInSeconds   int
	PaymentWindowInMinutes           int
}

type AppPrescription struct {
	ClinicName     string
	SigningKey     string
	CertificateRef string
}

type AppDoctorShift struct {
	ActiveDoctorCacheTimeInSeconds int
	MorningDoctorID                string
	EveningDoctorID                string
}

type AppPaymentGateway struct {
	BaseUrl                 string
	ApiKey                  string
	ApiSecret               string
	WebhookSecret           string
	RequestTimeoutInSeconds int
	UseMock                 bool
}

type AppAIAgent struct {
	BaseUrl                 string
	ApiKey                  string
	RequestTimeoutInSeconds int
	RequestsPerSecond       float64
	RequestBurst            int
}
