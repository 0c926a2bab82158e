package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/utils"
	"github.com/MKhiriev/go-tenant-vet/models"
)

const (
	// APIKeyHeader carries the orchestration credential on outbound calls.
	APIKeyHeader = "X-MCP-API-Key"

	dispatchPath = "/api/mcp/background-check"
	workflowPath = "/api/mcp/workflow/{workflowID}"
	healthPath   = "/api/mcp/health"
)

type httpOrchestrationAdapter struct {
	client *utils.HTTPClient
	apiKey string

	dispatchTimeout time.Duration
	pollTimeout     time.Duration
	healthTimeout   time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPOrchestrationAdapter constructs an HTTP/REST implementation of
// [OrchestrationAdapter]. It normalises and validates the base URL from
// cfg.OrchestrationURL and keeps one timeout per call kind: dispatch, status
// poll and health check.
//
// Returns an error if cfg.OrchestrationURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPOrchestrationAdapter(cfg config.Adapter, logger *logger.Logger) (OrchestrationAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.OrchestrationURL)
	if err != nil {
		return nil, fmt.Errorf("invalid orchestration url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpOrchestrationAdapter{
		client:          client,
		apiKey:          cfg.APIKey,
		dispatchTimeout: orDefault(cfg.DispatchTimeout, config.DefaultDispatchTimeout),
		pollTimeout:     orDefault(cfg.PollTimeout, config.DefaultPollTimeout),
		healthTimeout:   orDefault(cfg.HealthTimeout, config.DefaultHealthTimeout),
		now:             time.Now,
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// Dispatch implements [OrchestrationAdapter]. It POSTs req to
// POST /api/mcp/background-check and waits at most dispatchTimeout for the
// provider's answer.
func (h *httpOrchestrationAdapter) Dispatch(ctx context.Context, req models.DispatchRequest) (models.WorkflowResult, error) {
	ctx, cancel := context.WithTimeout(ctx, h.dispatchTimeout)
	defer cancel()

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(dispatchPath)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpOrchestrationAdapter.Dispatch").Str("check_id", req.CheckID).Msg("dispatch request failed")
		return models.WorkflowResult{}, mapTransportError("dispatch request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "*httpOrchestrationAdapter.Dispatch").Str("check_id", req.CheckID).Int("status", resp.StatusCode()).Msg("dispatch rejected")
		return models.WorkflowResult{}, err
	}

	var result models.WorkflowResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.WorkflowResult{}, fmt.Errorf("%w: %w: %w", ErrOrchestration, ErrDecodingResponse, err)
	}
	if result.WorkflowID == "" {
		return models.WorkflowResult{}, fmt.Errorf("%w: %w", ErrOrchestration, ErrEmptyWorkflowID)
	}
	result.Raw = append(json.RawMessage(nil), resp.Body()...)

	return result, nil
}

// WorkflowStatus implements [OrchestrationAdapter]. It GETs
// /api/mcp/workflow/{workflowID} within pollTimeout.
func (h *httpOrchestrationAdapter) WorkflowStatus(ctx context.Context, workflowID string) (models.WorkflowStatus, error) {
	if strings.TrimSpace(workflowID) == "" {
		return models.WorkflowStatus{}, fmt.Errorf("%w: %w", ErrOrchestration, ErrEmptyWorkflowID)
	}

	ctx, cancel := context.WithTimeout(ctx, h.pollTimeout)
	defer cancel()

	resp, err := h.request(ctx).
		SetPathParam("workflowID", workflowID).
		Get(workflowPath)
	if err != nil {
		return models.WorkflowStatus{}, mapTransportError("workflow status request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WorkflowStatus{}, err
	}

	var status struct {
		WorkflowID string          `json:"workflow_id"`
		Status     string          `json:"status"`
		Results    json.RawMessage `json:"results"`
		Error      string          `json:"error"`
		Timestamp  string          `json:"timestamp"`
	}
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		return models.WorkflowStatus{}, fmt.Errorf("%w: %w: %w", ErrOrchestration, ErrDecodingResponse, err)
	}
	if status.WorkflowID == "" {
		status.WorkflowID = workflowID
	}

	return models.WorkflowStatus{
		WorkflowID: status.WorkflowID,
		Status:     status.Status,
		Results:    status.Results,
		Error:      status.Error,
		Timestamp:  status.Timestamp,
	}, nil
}

// Health implements [OrchestrationAdapter]. Any 2xx answer from
// GET /api/mcp/health within healthTimeout counts as connected.
func (h *httpOrchestrationAdapter) Health(ctx context.Context) (models.DependencyHealth, error) {
	ctx, cancel := context.WithTimeout(ctx, h.healthTimeout)
	defer cancel()

	health := models.DependencyHealth{CheckedAt: h.now().UTC()}

	resp, err := h.request(ctx).Get(healthPath)
	if err != nil {
		err = mapTransportError("health request", err)
		health.Detail = err.Error()
		return health, err
	}
	if err = mapHTTPError(resp); err != nil {
		health.Detail = err.Error()
		return health, err
	}

	var body struct {
		Status string `json:"status"`
	}
	if json.Unmarshal(resp.Body(), &body) == nil && body.Status != "" {
		health.Detail = body.Status
	} else {
		health.Detail = "ok"
	}
	health.Connected = true

	return health, nil
}

func (h *httpOrchestrationAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.apiKey != "" {
		req.SetHeader(APIKeyHeader, h.apiKey)
	}
	return req
}
