package contracts

import (
	"context"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
)

// PaymentGatewayService is the uniform contract over payment backends. The
// production implementation talks HTTP to the gateway; the mock is
// deterministic and always succeeds.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error)
	VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.PaymentVerification, error)
	RefundPayment(ctx context.Context, request *requests.RefundPayment) (*responses.PaymentRefund, error)
	GetPaymentDetails(ctx context.Context, paymentID string) (*responses.PaymentDetails, error)
	VerifyWebhookSignature(payload []byte, signature string) error
}
