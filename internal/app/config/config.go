package config

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "tenderly"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Minio: AppMinio{
			BucketName:                    utils.GetEnvString("MINIO_BUCKET_NAME", "tenderly-prescriptions"),
			PreSignedUrlExpiryTimeInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			AuditQueue: utils.GetEnvString("APP_RABBITMQ_AUDIT_QUEUE", "tenderly.audit.events"),
		},
		MongoDB: AppMongoDB{
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "tenderly"),
		},
		Consultation: AppConsultation{
			DraftExpiryTimeInMinutes:         utils.GetEnvInt("APP_CONSULTATION_DRAFT_EXPIRY_TIME_IN_MINUTES", 30),
			PaymentRecordExpiryTimeInMinutes: utils.GetEnvInt("APP_PAYMENT_RECORD_EXPIRY_TIME_IN_MINUTES", 60),
			PaymentLockExpiryTimeInSeconds:   utils.GetEnvInt("APP_PAYMENT_LOCK_EXPIRY_TIME_IN_SECONDS", 30),
			PaymentWindowInMinutes:           utils.GetEnvInt("APP_PAYMENT_WINDOW_IN_MINUTES", 15),
		},
		Prescription: AppPrescription{
			ClinicName:     utils.GetEnvString("APP_CLINIC_NAME", "Tenderly Care"),
			SigningKey:     utils.GetEnvString("PRESCRIPTION_SIGNING_KEY", "anysigningkey"),
			CertificateRef: utils.GetEnvString("PRESCRIPTION_CERTIFICATE_REF", "tenderly-cert-001"),
		},
		DoctorShift: AppDoctorShift{
			ActiveDoctorCacheTimeInSeconds: utils.GetEnvInt("APP_ACTIVE_DOCTOR_CACHE_TIME_IN_SECONDS", 60),
			MorningDoctorID:                utils.GetEnvString("APP_MORNING_DOCTOR_ID", ""),
			EveningDoctorID:                utils.GetEnvString("APP_EVENING_DOCTOR_ID", ""),
		},
		PaymentGateway: AppPaymentGateway{
			BaseUrl:                 utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com/v1"),
			ApiKey:                  utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", ""),
			ApiSecret:               utils.GetEnvString("PAYMENT_GATEWAY_API_SECRET", ""),
			WebhookSecret:           utils.GetEnvString("PAYMENT_GATEWAY_WEBHOOK_SECRET", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 10),
			UseMock:                 utils.GetEnvBool("PAYMENT_GATEWAY_USE_MOCK", true),
		},
		AIAgent: AppAIAgent{
			BaseUrl:                 utils.GetEnvString("AI_AGENT_BASE_URL", "http://localhost:8000"),
			ApiKey:                  utils.GetEnvString("AI_AGENT_API_KEY", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("AI_AGENT_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestsPerSecond:       utils.GetEnvFloat("AI_AGENT_REQUESTS_PER_SECOND", 5),
			RequestBurst:            utils.GetEnvInt("AI_AGENT_REQUEST_BURST", 10),
		},
	}
}
