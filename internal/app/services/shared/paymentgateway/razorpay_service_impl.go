package paymentgateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type razorpayService struct {
	BaseUrl       string
	ApiKey        string
	ApiSecret     string
	WebhookSecret string
	HttpClient    *http.Client
	Log           *zap.Logger
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.PaymentGatewayService, error) {
	return &razorpayService{
		BaseUrl:       internalConfig.PaymentGateway.BaseUrl,
		ApiKey:        internalConfig.PaymentGateway.ApiKey,
		ApiSecret:     internalConfig.PaymentGateway.ApiSecret,
		WebhookSecret: internalConfig.PaymentGateway.WebhookSecret,
		HttpClient: &http.Client{
			Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}, nil
}

func (s *razorpayService) CreateOrder(ctx context.Context, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error) {
	payload := map[string]interface{}{
		"receipt":  request.ReferenceID,
		"amount":   request.Amount * 100,
		"currency": request.Currency,
	}

	body, err := s.call(ctx, http.MethodPost, "/orders", payload)
	if err != nil {
		return nil, err
	}

	var gatewayOrder struct {
		ID        string `json:"id"`
		Amount    int    `json:"amount"`
		Currency  string `json:"currency"`
		Status    string `json:"status"`
		CreatedAt int64  `json:"created_at"`
	}
	if err := json.Unmarshal(body, &gatewayOrder); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment-gateway")
	}

	expiresIn := request.ExpiresInMinutes
	if expiresIn <= 0 {
		expiresIn = 15
	}

	return &responses.PaymentOrder{
		OrderID:   gatewayOrder.ID,
		Amount:    gatewayOrder.Amount / 100,
		Currency:  gatewayOrder.Currency,
		Status:    gatewayOrder.Status,
		ExpiresAt: time.Now().Add(time.Duration(expiresIn) * time.Minute),
	}, nil
}

func (s *razorpayService) VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.PaymentVerification, error) {
	if request.Signature != "" {
		if err := s.verifyOrderSignature(request.OrderID, request.PaymentID, request.Signature); err != nil {
			return nil, err
		}
	}

	body, err := s.call(ctx, http.MethodGet, "/payments/"+request.PaymentID, nil)
	if err != nil {
		return nil, err
	}

	var gatewayPayment struct {
		ID       string `json:"id"`
		OrderID  string `json:"order_id"`
		Status   string `json:"status"`
		Amount   int    `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(body, &gatewayPayment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment-gateway")
	}

	verified := gatewayPayment.Status == "captured" || gatewayPayment.Status == "authorized"
	return &responses.PaymentVerification{
		PaymentID:            gatewayPayment.ID,
		OrderID:              gatewayPayment.OrderID,
		GatewayTransactionID: gatewayPayment.ID,
		Status:               gatewayPayment.Status,
		Verified:             verified,
		Amount:               gatewayPayment.Amount / 100,
		Currency:             gatewayPayment.Currency,
		Raw:                  body,
	}, nil
}

func (s *razorpayService) RefundPayment(ctx context.Context, request *requests.RefundPayment) (*responses.PaymentRefund, error) {
	payload := map[string]interface{}{}
	if request.Amount > 0 {
		payload["amount"] = request.Amount * 100
	}
	if request.Reason != "" {
		payload["notes"] = map[string]string{"reason": request.Reason}
	}

	body, err := s.call(ctx, http.MethodPost, "/payments/"+request.PaymentID+"/refund", payload)
	if err != nil {
		return nil, err
	}

	var gatewayRefund struct {
		ID        string `json:"id"`
		PaymentID string `json:"payment_id"`
		Amount    int    `json:"amount"`
		Status    string `json:"status"`
	}
	if err := json.Unmarshal(body, &gatewayRefund); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment-gateway")
	}

	return &responses.PaymentRefund{
		RefundID:  gatewayRefund.ID,
		PaymentID: gatewayRefund.PaymentID,
		Amount:    gatewayRefund.Amount / 100,
		Status:    gatewayRefund.Status,
	}, nil
}

func (s *razorpayService) GetPaymentDetails(ctx context.Context, paymentID string) (*responses.PaymentDetails, error) {
	body, err := s.call(ctx, http.MethodGet, "/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}

	var gatewayPayment struct {
		ID        string `json:"id"`
		OrderID   string `json:"order_id"`
		Status    string `json:"status"`
		Amount    int    `json:"amount"`
		Currency  string `json:"currency"`
		Method    string `json:"method"`
		CreatedAt int64  `json:"created_at"`
	}
	if err := json.Unmarshal(body, &gatewayPayment); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment-gateway")
	}

	return &responses.PaymentDetails{
		PaymentID: gatewayPayment.ID,
		OrderID:   gatewayPayment.OrderID,
		Status:    gatewayPayment.Status,
		Amount:    gatewayPayment.Amount / 100,
		Currency:  gatewayPayment.Currency,
		Method:    gatewayPayment.Method,
		CreatedAt: time.Unix(gatewayPayment.CreatedAt, 0),
	}, nil
}

func (s *razorpayService) VerifyWebhookSignature(payload []byte, signature string) error {
	return VerifySignature(payload, signature, s.WebhookSecret)
}

// verifyOrderSignature checks the checkout callback signature computed over
// "orderID|paymentID".
func (s *razorpayService) verifyOrderSignature(orderID, paymentID, signature string) error {
	message := []byte(fmt.Sprintf("%s|%s", orderID, paymentID))
	return VerifySignature(message, signature, s.ApiSecret)
}

// VerifySignature compares an HMAC-SHA256 hex digest in constant time.
func VerifySignature(message []byte, signature, secret string) error {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return exceptions.ErrInvalidSignature(nil)
	}
	return nil
}

func (s *razorpayService) call(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, s.BaseUrl+path, reqBody)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpReq.SetBasicAuth(s.ApiKey, s.ApiSecret)

	resp, err := s.HttpClient.Do(httpReq)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "payment-gateway")
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		s.Log.Error("razorpayService.call non-success status from gateway",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPaymentVerificationFailed(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	return body, nil
}
