package models

import (
	"encoding/json"
	"time"
)

// WorkflowHandle references a workflow started on the orchestration
// dependency for a single check.
type WorkflowHandle struct {
	WorkflowID   string    `json:"workflowId"`
	CheckID      string    `json:"checkId"`
	DispatchedAt time.Time `json:"dispatchedAt"`
	LastStatus   string    `json:"lastStatus,omitempty"`
}

// DispatchRequest is the body sent to the orchestration dependency to start
// a background-check workflow.
type DispatchRequest struct {
	CheckID         string     `json:"checkId"`
	ApplicantName   string     `json:"applicantName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	PropertyAddress string     `json:"propertyAddress,omitempty"`
	DateOfBirth     string     `json:"dateOfBirth"`
	SensitiveID     string     `json:"sensitiveId"`
	CheckLevel      CheckLevel `json:"checkLevel"`
	DataSources     []string   `json:"dataSources"`
	CallbackURL     string     `json:"callbackUrl,omitempty"`
}

// Applicant returns the request without the raw sensitive identifier, which
// makes it safe to hand to the local result generators.
func (r DispatchRequest) Applicant() CheckRequest {
	return CheckRequest{
		ApplicantName:   r.ApplicantName,
		Email:           r.Email,
		Phone:           r.Phone,
		PropertyAddress: r.PropertyAddress,
		DateOfBirth:     r.DateOfBirth,
		CheckLevel:      r.CheckLevel,
	}
}

// WorkflowResult is the provider-shaped answer of the orchestration
// dependency (snake_case, as the provider sends it).
type WorkflowResult struct {
	WorkflowID          string               `json:"workflow_id"`
	Status              string               `json:"status"`
	FinalRecommendation *FinalRecommendation `json:"final_recommendation,omitempty"`
	PerformanceMetrics  *PerformanceMetrics  `json:"performance_metrics,omitempty"`
	Error               string               `json:"error,omitempty"`

	// Raw is the undecoded response body, kept for the normalizer and for
	// diagnostics when normalization fails.
	Raw json.RawMessage `json:"-"`
}

type FinalRecommendation struct {
	FinalDecision      *FinalDecision      `json:"final_decision,omitempty"`
	SupportingEvidence *SupportingEvidence `json:"supporting_evidence,omitempty"`
	RecommendedActions []string            `json:"recommended_actions,omitempty"`
}

// FinalDecision carries the provider's verdict. OverallScore is a 0-100
// confidence value and may be absent.
type FinalDecision struct {
	Recommendation  string   `json:"recommendation"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	ConfidenceLevel string   `json:"confidence_level,omitempty"`
	OverallScore    *float64 `json:"overall_score,omitempty"`
}

type SupportingEvidence struct {
	IdentityVerified    bool `json:"identity_verified"`
	BackgroundClear     bool `json:"background_clear"`
	EmploymentConfirmed bool `json:"employment_confirmed"`
	DataSourcesCount    int  `json:"data_sources_count"`
}

type PerformanceMetrics struct {
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	AgentSuccessRate     float64 `json:"agent_success_rate"`
	AgentsExecuted       int     `json:"agents_executed"`
	AgentsSuccessful     int     `json:"agents_successful"`
}

// CallbackPayload is the body of POST /orchestration/callback.
//
// Recommendation is either a bare recommendation string or the provider's
// final_decision object, so it is kept raw until normalization.
type CallbackPayload struct {
	WorkflowID         string          `json:"workflowId"`
	Status             string          `json:"status"`
	Recommendation     json.RawMessage `json:"recommendation,omitempty"`
	RecommendedActions []string        `json:"recommendedActions,omitempty"`
	Error              string          `json:"error,omitempty"`
}

// DispatchState names the branch the dispatch took.
type DispatchState string

const (
	DispatchExternalOK DispatchState = "external_ok"
	DispatchFallback   DispatchState = "fallback"
)

// DispatchResult is what the orchestration client hands back to the check
// engine. Success is always true towards callers; Fallback records the
// provenance of the result.
type DispatchResult struct {
	Success  bool          `json:"success"`
	State    DispatchState `json:"-"`
	Fallback bool          `json:"-"`

	// Handle is set when the external dependency accepted the workflow.
	Handle *WorkflowHandle `json:"workflow,omitempty"`

	// Result is the provider answer on the external branch.
	Result *WorkflowResult `json:"-"`

	// Results is the locally generated outcome on the fallback branch.
	Results *Results `json:"results,omitempty"`

	// Err is the dispatch failure that caused the fallback.
	Err error `json:"-"`
}

// WorkflowStatus is a read-only view of a remote workflow.
type WorkflowStatus struct {
	WorkflowID string          `json:"workflowId"`
	Status     string          `json:"status"`
	Results    json.RawMessage `json:"results,omitempty"`
	Error      string          `json:"error,omitempty"`
	Timestamp  string          `json:"timestamp,omitempty"`
}

// DependencyHealth is the structured answer of an orchestration health check.
type DependencyHealth struct {
	Connected bool      `json:"connected"`
	Detail    string    `json:"detail"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string           `json:"status"`
	Version       string           `json:"version,omitempty"`
	Orchestration DependencyHealth `json:"orchestration"`
}
