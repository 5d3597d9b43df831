package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAIAgentOutput(t *testing.T) {
	receivedAt := time.Now()

	t.Run("v1 legacy field names", func(t *testing.T) {
		payload := []byte(`{"schema_version":"v1","result":"bacterial vaginosis","confidence_score":0.82}`)

		output, err := DecodeAIAgentOutput(payload, receivedAt)
		assert.NoError(t, err)
		assert.Equal(t, AIAgentSchemaVersionV1, output.SchemaVersion)
		assert.Equal(t, "bacterial vaginosis", output.Diagnosis)
		assert.Equal(t, 0.82, output.Confidence)
		assert.Equal(t, receivedAt, output.ReceivedAt)
	})

	t.Run("missing schema version is treated as v1", func(t *testing.T) {
		payload := []byte(`{"result":"candidiasis","confidence_score":0.7}`)

		output, err := DecodeAIAgentOutput(payload, receivedAt)
		assert.NoError(t, err)
		assert.Equal(t, AIAgentSchemaVersionV1, output.SchemaVersion)
		assert.Equal(t, "candidiasis", output.Diagnosis)
	})

	t.Run("v2 canonical fields", func(t *testing.T) {
		payload := []byte(`{
			"schema_version":"v2",
			"diagnosis":"pelvic inflammatory disease",
			"confidence":0.91,
			"recommendations":["start antibiotics"],
			"suggested_tests":["pelvic ultrasound"],
			"severity_assessment":"moderate"
		}`)

		output, err := DecodeAIAgentOutput(payload, receivedAt)
		assert.NoError(t, err)
		assert.Equal(t, AIAgentSchemaVersionV2, output.SchemaVersion)
		assert.Equal(t, "pelvic inflammatory disease", output.Diagnosis)
		assert.Equal(t, 0.91, output.Confidence)
		assert.Equal(t, []string{"start antibiotics"}, output.Recommendations)
		assert.Equal(t, []string{"pelvic ultrasound"}, output.SuggestedTests)
		assert.Equal(t, "moderate", output.SeverityAssessment)
	})

	t.Run("raw payload is retained", func(t *testing.T) {
		payload := []byte(`{"schema_version":"v2","diagnosis":"x","confidence":0.5,"extra_field":true}`)

		output, err := DecodeAIAgentOutput(payload, receivedAt)
		assert.NoError(t, err)
		assert.JSONEq(t, string(payload), string(output.RawPayload))
	})

	t.Run("unsupported version is rejected", func(t *testing.T) {
		payload := []byte(`{"schema_version":"v9","diagnosis":"x"}`)

		output, err := DecodeAIAgentOutput(payload, receivedAt)
		assert.Error(t, err)
		assert.Nil(t, output)
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		output, err := DecodeAIAgentOutput([]byte(`{not json`), receivedAt)
		assert.Error(t, err)
		assert.Nil(t, output)
	})
}
