package routers

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/delivery/http/middlewares"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/consultations"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/prescriptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *consultations.ConsultationController, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.TenderlyRolePatient))
		r.Post("/type-selection", consultationController.SelectConsultationType)
		r.Post("/payment-confirmation", consultationController.ConfirmPayment)
		r.Post("/assessment", consultationController.CollectStructuredAssessment)
		r.Get("/active", consultationController.GetActiveConsultation)
		r.Get("/conflicts", consultationController.CheckConsultationConflicts)
	})

	router.Route("/{consultationID}", func(r chi.Router) {
		r.Patch("/status", consultationController.UpdateConsultationStatus)
		r.Post("/messages", consultationController.AppendChatMessage)
		r.Get("/prescription/download", prescriptionController.GetDownloadURL)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRoles(constvars.TenderlyRoleAdmin))
			r.Post("/refund", consultationController.RefundConsultation)
		})

		r.Route("/prescription", func(r chi.Router) {
			r.Use(middlewares.RequireRoles(constvars.TenderlyRoleDoctor))
			r.Put("/diagnosis", prescriptionController.UpdateDiagnosis)
			r.Put("/draft", prescriptionController.SaveDraft)
			r.Post("/preview", prescriptionController.GeneratePreview)
			r.Post("/sign-and-send", prescriptionController.SignAndSend)
			r.Post("/revision", prescriptionController.RequestRevision)
			r.Post("/complete", prescriptionController.CompleteConsultation)
		})
	})
}
