package paymentgateway

import (
	"context"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"

	"github.com/google/uuid"
)

// mockService is a deterministic gateway for development and staging. Every
// payment verifies successfully and refunds are instant.
type mockService struct {
	WebhookSecret string
}

func NewMockService(webhookSecret string) contracts.PaymentGatewayService {
	return &mockService{WebhookSecret: webhookSecret}
}

func (s *mockService) CreateOrder(ctx context.Context, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error) {
	expiresIn := request.ExpiresInMinutes
	if expiresIn <= 0 {
		expiresIn = 15
	}
	return &responses.PaymentOrder{
		OrderID:   "order_mock_" + uuid.NewString(),
		PaymentID: "pay_mock_" + uuid.NewString(),
		Amount:    request.Amount,
		Currency:  request.Currency,
		Status:    "created",
		ExpiresAt: time.Now().Add(time.Duration(expiresIn) * time.Minute),
	}, nil
}

func (s *mockService) VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.PaymentVerification, error) {
	return &responses.PaymentVerification{
		PaymentID:            request.PaymentID,
		OrderID:              request.OrderID,
		GatewayTransactionID: "txn_mock_" + uuid.NewString(),
		Status:               string(models.PaymentStatusCompleted),
		Verified:             true,
		Amount:               0,
		Currency:             "INR",
	}, nil
}

func (s *mockService) RefundPayment(ctx context.Context, request *requests.RefundPayment) (*responses.PaymentRefund, error) {
	return &responses.PaymentRefund{
		RefundID:  "rfnd_mock_" + uuid.NewString(),
		PaymentID: request.PaymentID,
		Amount:    request.Amount,
		Status:    "processed",
	}, nil
}

func (s *mockService) GetPaymentDetails(ctx context.Context, paymentID string) (*responses.PaymentDetails, error) {
	return &responses.PaymentDetails{
		PaymentID: paymentID,
		Status:    string(models.PaymentStatusCompleted),
		Currency:  "INR",
		CreatedAt: time.Now(),
	}, nil
}

func (s *mockService) VerifyWebhookSignature(payload []byte, signature string) error {
	return VerifySignature(payload, signature, s.WebhookSecret)
}
