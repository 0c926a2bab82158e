package screening

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/models"
)

// SourceFormat names the shape of a raw result handed to Normalize.
type SourceFormat string

const (
	// FormatOrchestration is the provider workflow result (snake_case).
	FormatOrchestration SourceFormat = "orchestration"
	// FormatCallback is the body of an inbound orchestration callback.
	FormatCallback SourceFormat = "callback"
	// FormatFallback is a canonical Results object produced locally.
	FormatFallback SourceFormat = "fallback"
)

var (
	ErrNormalization     = errors.New("result normalization failed")
	ErrUnknownFormat     = errors.New("unknown result format")
	ErrEmptyResult       = errors.New("empty result payload")
	errProviderFailedMsg = "orchestration workflow failed"
)

// recommendationStatus is the fixed, case-sensitive mapping of provider
// recommendations to check statuses. Anything else keeps the check in
// processing.
var recommendationStatus = map[string]models.CheckStatus{
	"approve":                 models.StatusApproved,
	"approve_with_conditions": models.StatusApproved,
	"manual_review":           models.StatusFlagged,
	"decline":                 models.StatusDeclined,
}

// StatusFromRecommendation applies the recommendation table.
func StatusFromRecommendation(recommendation string) models.CheckStatus {
	if status, ok := recommendationStatus[recommendation]; ok {
		return status
	}
	return models.StatusProcessing
}

// Normalize converts a raw result of the given format into a check patch.
//
// It never panics. When the payload cannot be interpreted the returned patch
// has status error and carries the failure detail, and the returned error
// wraps ErrNormalization so the caller can log the original payload.
func Normalize(raw []byte, format SourceFormat) (patch models.CheckPatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			patch, err = errorPatch(fmt.Errorf("%w: panic: %v", ErrNormalization, r))
		}
	}()

	if len(bytes.TrimSpace(raw)) == 0 {
		return errorPatch(fmt.Errorf("%w: %w", ErrNormalization, ErrEmptyResult))
	}

	switch format {
	case FormatOrchestration:
		var result models.WorkflowResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return errorPatch(fmt.Errorf("%w: decoding workflow result: %w", ErrNormalization, err))
		}
		return fromWorkflow(result), nil

	case FormatCallback:
		var payload models.CallbackPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return errorPatch(fmt.Errorf("%w: decoding callback: %w", ErrNormalization, err))
		}
		result, err := workflowFromCallback(payload)
		if err != nil {
			return errorPatch(fmt.Errorf("%w: %w", ErrNormalization, err))
		}
		return fromWorkflow(result), nil

	case FormatFallback:
		var results models.Results
		if err := json.Unmarshal(raw, &results); err != nil {
			return errorPatch(fmt.Errorf("%w: decoding results: %w", ErrNormalization, err))
		}
		return NormalizeResults(results), nil

	default:
		return errorPatch(fmt.Errorf("%w: %w %q", ErrNormalization, ErrUnknownFormat, format))
	}
}

// NormalizeResults turns locally produced results into a completed patch.
// The score is clamped, the risk level re-derived from it and an empty
// recommendation list filled with the risk-based advice.
func NormalizeResults(results models.Results) models.CheckPatch {
	results.OverallScore = ClampScore(results.OverallScore)
	results.RiskLevel = DeriveRisk(results.OverallScore)

	if len(results.Recommendations) == 0 {
		results.Recommendations = RiskRecommendations(
			results.RiskLevel,
			results.CreditAssessment.Score,
			results.CriminalBackground.RecordsFound,
		)
	}

	return models.CheckPatch{
		Status:   models.StatusCompleted,
		Results:  &results,
		Fallback: results.Source == models.SourceFallback,
	}
}

func fromWorkflow(result models.WorkflowResult) models.CheckPatch {
	if result.Status == "failed" || result.Status == "error" {
		detail := result.Error
		if detail == "" {
			detail = errProviderFailedMsg
		}
		return models.CheckPatch{Status: models.StatusError, Error: detail}
	}

	var (
		decision models.FinalDecision
		evidence *models.SupportingEvidence
		actions  []string
	)
	if fr := result.FinalRecommendation; fr != nil {
		if fr.FinalDecision != nil {
			decision = *fr.FinalDecision
		}
		evidence = fr.SupportingEvidence
		actions = fr.RecommendedActions
	}

	status := StatusFromRecommendation(decision.Recommendation)
	if status == models.StatusProcessing {
		return models.CheckPatch{Status: models.StatusProcessing}
	}

	score := DefaultScore
	if decision.OverallScore != nil {
		score = RescaleScore(*decision.OverallScore)
	}
	risk := DeriveRisk(score)

	if len(actions) == 0 {
		actions = RecommendedActions(decision.Recommendation)
	}

	results := &models.Results{
		OverallScore:    score,
		RiskLevel:       risk,
		Recommendations: actions,
		Source:          models.SourceOrchestration,
	}
	fillSectionsFromEvidence(results, evidence, result.WorkflowID)

	patch := models.CheckPatch{
		Status:  status,
		Results: results,
	}
	if m := result.PerformanceMetrics; m != nil && m.TotalDurationSeconds > 0 {
		seconds := m.TotalDurationSeconds
		patch.ProcessingTimeSeconds = &seconds
	}

	return patch
}

func workflowFromCallback(payload models.CallbackPayload) (models.WorkflowResult, error) {
	decision, err := decodeRecommendation(payload.Recommendation)
	if err != nil {
		return models.WorkflowResult{}, err
	}

	result := models.WorkflowResult{
		WorkflowID: payload.WorkflowID,
		Status:     payload.Status,
		Error:      payload.Error,
	}
	if decision != nil || len(payload.RecommendedActions) > 0 {
		result.FinalRecommendation = &models.FinalRecommendation{
			FinalDecision:      decision,
			RecommendedActions: payload.RecommendedActions,
		}
	}

	return result, nil
}

// decodeRecommendation accepts either a bare recommendation string or a
// final_decision object.
func decodeRecommendation(raw json.RawMessage) (*models.FinalDecision, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var recommendation string
		if err := json.Unmarshal(raw, &recommendation); err != nil {
			return nil, fmt.Errorf("decoding recommendation: %w", err)
		}
		return &models.FinalDecision{Recommendation: recommendation}, nil
	}

	var decision models.FinalDecision
	if err := json.Unmarshal(raw, &decision); err != nil {
		return nil, fmt.Errorf("decoding final decision: %w", err)
	}
	return &decision, nil
}

func fillSectionsFromEvidence(results *models.Results, evidence *models.SupportingEvidence, workflowID string) {
	if evidence == nil {
		evidence = &models.SupportingEvidence{}
	}
	source := fmt.Sprintf("reported by orchestration workflow %s", workflowID)

	results.IdentityVerification = models.IdentityVerification{
		Status:  verifiedStatus(evidence.IdentityVerified),
		Details: source,
	}
	if evidence.IdentityVerified {
		results.IdentityVerification.Confidence = 100
	}

	results.CreditAssessment = models.CreditAssessment{
		Score:   results.OverallScore,
		Status:  string(results.RiskLevel),
		Details: source,
	}

	criminal := models.CriminalBackground{Status: "clear", Details: source}
	if !evidence.BackgroundClear {
		criminal.Status = "review_required"
	}
	results.CriminalBackground = criminal

	results.EmploymentVerification = models.EmploymentVerification{
		Status:  verifiedStatus(evidence.EmploymentConfirmed),
		Details: source,
	}

	results.RentalHistory = models.RentalHistory{
		Status:  "not_reported",
		Details: fmt.Sprintf("%d data sources integrated", evidence.DataSourcesCount),
	}
}

func verifiedStatus(ok bool) string {
	if ok {
		return "verified"
	}
	return "unverified"
}

func errorPatch(err error) (models.CheckPatch, error) {
	return models.CheckPatch{Status: models.StatusError, Error: err.Error()}, err
}
