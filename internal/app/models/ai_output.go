package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

const (
	AIAgentSchemaVersionV1 = "v1"
	AIAgentSchemaVersionV2 = "v2"
)

// AIAgentOutput is the typed form of the diagnosis microservice response.
// The wire payload is tagged with schema_version; DecodeAIAgentOutput maps
// every supported version onto this struct so internal logic never touches
// untyped maps.
type AIAgentOutput struct {
	SchemaVersion      string          `json:"schema_version" bson:"schema_version"`
	Diagnosis          string          `json:"diagnosis" bson:"diagnosis"`
	Confidence         float64         `json:"confidence" bson:"confidence"`
	Recommendations    []string        `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	SuggestedTests     []string        `json:"suggested_tests,omitempty" bson:"suggested_tests,omitempty"`
	SeverityAssessment string          `json:"severity_assessment,omitempty" bson:"severity_assessment,omitempty"`
	RawPayload         json.RawMessage `json:"-" bson:"raw_payload,omitempty"`
	ReceivedAt         time.Time       `json:"received_at" bson:"received_at"`
}

type aiAgentEnvelope struct {
	SchemaVersion      string   `json:"schema_version"`
	Diagnosis          string   `json:"diagnosis"`
	Confidence         float64  `json:"confidence"`
	Recommendations    []string `json:"recommendations"`
	SuggestedTests     []string `json:"suggested_tests"`
	SeverityAssessment string   `json:"severity_assessment"`

	// v1 field names, superseded in v2.
	Result          string  `json:"result"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// DecodeAIAgentOutput leniently decodes a diagnosis payload. Unknown fields
// are ignored; the raw payload is retained for later reprocessing. A payload
// without schema_version is treated as v1.
func DecodeAIAgentOutput(payload []byte, receivedAt time.Time) (*AIAgentOutput, error) {
	var envelope aiAgentEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, err
	}

	version := envelope.SchemaVersion
	if version == "" {
		version = AIAgentSchemaVersionV1
	}

	output := &AIAgentOutput{
		SchemaVersion:      version,
		Diagnosis:          envelope.Diagnosis,
		Confidence:         envelope.Confidence,
		Recommendations:    envelope.Recommendations,
		SuggestedTests:     envelope.SuggestedTests,
		SeverityAssessment: envelope.SeverityAssessment,
		RawPayload:         json.RawMessage(payload),
		ReceivedAt:         receivedAt,
	}

	switch version {
	case AIAgentSchemaVersionV1:
		if output.Diagnosis == "" {
			output.Diagnosis = envelope.Result
		}
		if output.Confidence == 0 {
			output.Confidence = envelope.ConfidenceScore
		}
	case AIAgentSchemaVersionV2:
		// v2 uses the canonical field names already.
	default:
		return nil, fmt.Errorf("unsupported ai agent schema version %q", version)
	}

	return output, nil
}
