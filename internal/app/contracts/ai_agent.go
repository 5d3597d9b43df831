package contracts

import (
	"context"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
)

// AIAgentClient wraps the diagnosis microservice. The response payload is
// versioned; implementations must decode it through models.DecodeAIAgentOutput.
type AIAgentClient interface {
	Diagnose(ctx context.Context, assessment *models.StructuredAssessment) (*models.AIAgentOutput, error)
}
