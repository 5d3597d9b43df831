package aiagent

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	aiAgentClientInstance contracts.AIAgentClient
	onceAIAgentClient     sync.Once
)

type aiAgentClient struct {
	BaseUrl    string
	ApiKey     string
	HttpClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewAIAgentClient limits outbound calls so one busy tenant cannot saturate
// the diagnosis service.
func NewAIAgentClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AIAgentClient {
	onceAIAgentClient.Do(func() {
		instance := &aiAgentClient{
			BaseUrl: internalConfig.AIAgent.BaseUrl,
			ApiKey:  internalConfig.AIAgent.ApiKey,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.AIAgent.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(internalConfig.AIAgent.RequestsPerSecond), internalConfig.AIAgent.RequestBurst),
			Log:     logger,
		}
		aiAgentClientInstance = instance
	})
	return aiAgentClientInstance
}

func (c *aiAgentClient) Diagnose(ctx context.Context, assessment *models.StructuredAssessment) (*models.AIAgentOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrAIAgentCall(err)
	}

	payload, err := json.Marshal(assessment)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/diagnose", bytes.NewBuffer(payload))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpReq.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.ApiKey)

	c.Log.Info("aiAgentClient.Diagnose calling diagnosis service",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.HttpClient.Do(httpReq)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "ai-agent")
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("aiAgentClient.Diagnose non-OK status from diagnosis service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrAIAgentCall(nil)
	}

	output, err := models.DecodeAIAgentOutput(body, time.Now())
	if err != nil {
		return nil, err
	}
	return output, nil
}
