package routers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/delivery/http/middlewares"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/consultations"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/prescriptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/shifts"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	consultationController *consultations.ConsultationController,
	prescriptionController *prescriptions.PrescriptionController,
	doctorShiftController *shifts.DoctorShiftController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/consultations", func(r chi.Router) {
				attachConsultationRoutes(r, middlewares, consultationController, prescriptionController)
			})

			r.Route("/shifts", func(r chi.Router) {
				attachDoctorShiftRoutes(r, middlewares, doctorShiftController)
			})

			r.Route("/webhooks", func(r chi.Router) {
				attachWebhookRoutes(r, consultationController)
			})
		})
	})
}
