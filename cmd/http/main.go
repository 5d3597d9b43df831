package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/delivery/http/middlewares"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/delivery/http/routers"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/drivers/database"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/drivers/logger"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/drivers/messaging"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/drivers/storage"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/consultations"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/prescriptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/shifts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/aiagent"
	auditsink "github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/audit"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/document"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/locker"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/paymentgateway"
	redisrepo "github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/redis"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/session"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/sessionstore"
	miniostorage "github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Mongo:          mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(bootstrap, minioClient, bootLog); err != nil {
		bootLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error closing dependencies: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client, bootLog *logrus.Logger) error {
	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionStore := sessionstore.NewSessionStore(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository)
	minioStorage := miniostorage.NewMinioStorage(minioClient)

	auditSink, err := auditsink.NewAuditSink(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.AuditQueue)
	if err != nil {
		return err
	}

	var paymentGateway contracts.PaymentGatewayService
	if bootstrap.InternalConfig.PaymentGateway.UseMock {
		bootLog.Println("Payment gateway running in mock mode")
		paymentGateway = paymentgateway.NewMockService(bootstrap.InternalConfig.PaymentGateway.WebhookSecret)
	} else {
		paymentGateway, err = paymentgateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.Logger)
		if err != nil {
			return err
		}
	}

	aiAgentClient := aiagent.NewAIAgentClient(bootstrap.InternalConfig, bootstrap.Logger)

	prescriptionRenderer := document.NewPDFRenderer(bootstrap.InternalConfig.Prescription.ClinicName)
	signatureService := document.NewHMACSignatureService(
		bootstrap.InternalConfig.Prescription.SigningKey,
		bootstrap.InternalConfig.Prescription.CertificateRef,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Doctor shifts
	doctorShiftMongoRepository := shifts.NewDoctorShiftMongoRepository(bootstrap.Mongo, bootstrap.InternalConfig.MongoDB.DbName)
	doctorShiftUsecase := shifts.NewDoctorShiftUsecase(
		doctorShiftMongoRepository,
		redisRepository,
		auditSink,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorShiftController := shifts.NewDoctorShiftController(bootstrap.Logger, doctorShiftUsecase)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := doctorShiftUsecase.SeedDefaultShifts(
		seedCtx,
		bootstrap.InternalConfig.DoctorShift.MorningDoctorID,
		bootstrap.InternalConfig.DoctorShift.EveningDoctorID,
	); err != nil {
		return err
	}

	// Consultations
	consultationMongoRepository := consultations.NewConsultationMongoRepository(bootstrap.Mongo, bootstrap.InternalConfig.MongoDB.DbName)
	consultationUsecase, err := consultations.NewConsultationUsecase(
		consultationMongoRepository,
		sessionStore,
		lockerService,
		paymentGateway,
		doctorShiftUsecase,
		aiAgentClient,
		auditSink,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}
	consultationController := consultations.NewConsultationController(bootstrap.Logger, consultationUsecase)

	// Prescriptions
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.Mongo, bootstrap.InternalConfig.MongoDB.DbName)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		consultationMongoRepository,
		prescriptionMongoRepository,
		prescriptionRenderer,
		signatureService,
		minioStorage,
		auditSink,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		consultationController,
		prescriptionController,
		doctorShiftController,
	)
	return nil
}
