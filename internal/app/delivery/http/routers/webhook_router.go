package routers

import (
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/services/core/consultations"

	"github.com/go-chi/chi/v5"
)

// Webhook routes carry no session; authenticity comes from the gateway
// signature over the raw payload.
func attachWebhookRoutes(router chi.Router, consultationController *consultations.ConsultationController) {
	router.Post("/payment", consultationController.PaymentWebhook)
}
