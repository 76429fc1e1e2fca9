package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for name, content := range map[string]string{
		"scoring_context":  scoringContextSchema,
		"pressure_context": pressureContextSchema,
	} {
		t.Run(name, func(t *testing.T) {
			var v interface{}
			require.NoError(t, json.Unmarshal([]byte(content), &v))
		})
	}
}

func TestValidateScoringContext_EmptyObject(t *testing.T) {
	// Every sub-record is optional.
	assert.NoError(t, ValidateScoringContext([]byte(`{}`)))
}

func TestValidateScoringContext_FullDocument(t *testing.T) {
	doc := `{
		"industry": "saas",
		"competitors": ["rival.com"],
		"session_total_queries": 20,
		"ai_responses": [
			{"platform": "chatgpt", "brand_mentioned": true, "sentiment_score": 0.6}
		],
		"search_summary": {"total_clicks": 120, "total_impressions": 9000, "avg_ctr_pct": 1.3, "avg_position": 12.4},
		"integrations": [
			{"platform": "linkedin", "status": "connected", "metadata": {"followers": 4200}}
		],
		"review_snapshots": [
			{"rating": 4.4, "review_count": 88, "fetched_at": "2026-08-01T00:00:00Z"}
		],
		"domain_intelligence": {"page_count": 140, "content_depth_score": 0.7, "technical_health_score": 0.8},
		"blind_spots": {"total_blind_spots": 3, "high_priority_count": 1, "avg_severity_score": 40, "blind_spot_pct": 25},
		"gap_report": {"total_queries": 10, "ai_risk_count": 2, "balanced_count": 5},
		"market_shares": [
			{"ai_mention_share_pct": 34.5, "generated_at": "2026-08-15T00:00:00Z"}
		]
	}`
	assert.NoError(t, ValidateScoringContext([]byte(doc)))
}

func TestValidateScoringContext_BadTypes(t *testing.T) {
	doc := `{"session_total_queries": "twenty"}`
	err := ValidateScoringContext([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Errors[0].Field, "session_total_queries")
}

func TestValidateScoringContext_MissingRequiredField(t *testing.T) {
	doc := `{"ai_responses": [{"platform": "chatgpt"}]}`
	err := ValidateScoringContext([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestValidateScoringContext_RejectsUnknownFields(t *testing.T) {
	err := ValidateScoringContext([]byte(`{"final_score": 90}`))
	require.Error(t, err)
}

func TestValidateScoringContext_BadBand(t *testing.T) {
	doc := `{"gap_report": {"queries": [{"band": "mystery"}]}}`
	err := ValidateScoringContext([]byte(doc))
	require.Error(t, err)
}

func TestValidatePressureContext_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidatePressureContext([]byte(`{}`)))
}

func TestValidatePressureContext_RejectsScoringOnlyFields(t *testing.T) {
	err := ValidatePressureContext([]byte(`{"search_summary": {}}`))
	require.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{{Field: "industry", Message: "wrong type"}}}
	assert.Contains(t, ve.Error(), "industry")
	assert.Contains(t, ve.Error(), "wrong type")
}
