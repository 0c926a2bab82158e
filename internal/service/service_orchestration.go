package service

import (
	"context"
	"crypto/hmac"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tenant-vet/internal/adapter"
	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/screening"
	"github.com/MKhiriev/go-tenant-vet/internal/utils"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// CallbackPath is the route the orchestration dependency posts results to.
const CallbackPath = "/orchestration/callback"

type orchestrationService struct {
	// adapter is nil when no orchestration dependency is configured.
	adapter  adapter.OrchestrationAdapter
	fallback *screening.FallbackGenerator

	apiKey      string
	callbackURL string

	now    func() time.Time
	logger *logger.Logger
}

// NewOrchestrationService builds the orchestration client. A nil
// orchestrationAdapter disables the external branch: Enabled reports false,
// PollStatus fails with ErrOrchestrationDisabled and Dispatch goes straight
// to the fallback generator.
func NewOrchestrationService(orchestrationAdapter adapter.OrchestrationAdapter, fallback *screening.FallbackGenerator, cfg config.Adapter, logger *logger.Logger) OrchestrationService {
	var callbackURL string
	if base := strings.TrimRight(strings.TrimSpace(cfg.CallbackBaseURL), "/"); base != "" {
		callbackURL = base + CallbackPath
	}

	return &orchestrationService{
		adapter:     orchestrationAdapter,
		fallback:    fallback,
		apiKey:      cfg.APIKey,
		callbackURL: callbackURL,
		now:         time.Now,
		logger:      logger,
	}
}

func (o *orchestrationService) Enabled() bool {
	return o.adapter != nil
}

func (o *orchestrationService) CallbackURL() string {
	return o.callbackURL
}

// Dispatch runs the dispatch state machine:
//
//	dispatched → external_ok
//	dispatched → external_failed → fallback
//
// The returned result always reports Success unless ctx ended before the
// fallback could be produced.
func (o *orchestrationService) Dispatch(ctx context.Context, req models.DispatchRequest) models.DispatchResult {
	log := o.logger.WithCheck(req.CheckID)

	if o.adapter == nil {
		return o.fallbackResult(ctx, req, ErrOrchestrationDisabled)
	}

	dispatchedAt := o.now().UTC()
	result, err := o.adapter.Dispatch(ctx, req)
	if err != nil {
		log.Warn().Err(err).Msg("orchestration dispatch failed, using fallback results")
		return o.fallbackResult(ctx, req, err)
	}

	log.Info().Str("workflow_id", result.WorkflowID).Str("status", result.Status).Msg("orchestration workflow dispatched")

	return models.DispatchResult{
		Success: true,
		State:   models.DispatchExternalOK,
		Handle: &models.WorkflowHandle{
			WorkflowID:   result.WorkflowID,
			CheckID:      req.CheckID,
			DispatchedAt: dispatchedAt,
			LastStatus:   result.Status,
		},
		Result: &result,
	}
}

func (o *orchestrationService) fallbackResult(ctx context.Context, req models.DispatchRequest, cause error) models.DispatchResult {
	dispatch := models.DispatchResult{
		State:    models.DispatchFallback,
		Fallback: true,
		Err:      cause,
	}

	results, err := o.fallback.Generate(ctx, req.Applicant())
	if err != nil {
		dispatch.Err = fmt.Errorf("fallback generation aborted: %w", err)
		return dispatch
	}

	dispatch.Success = true
	dispatch.Results = &results
	return dispatch
}

func (o *orchestrationService) PollStatus(ctx context.Context, workflowID string) (models.WorkflowStatus, error) {
	if o.adapter == nil {
		return models.WorkflowStatus{}, ErrOrchestrationDisabled
	}

	status, err := o.adapter.WorkflowStatus(ctx, workflowID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("workflow_id", workflowID).Msg("workflow status poll failed")
		return models.WorkflowStatus{}, err
	}

	return status, nil
}

func (o *orchestrationService) HealthCheck(ctx context.Context) models.DependencyHealth {
	if o.adapter == nil {
		return models.DependencyHealth{
			Connected: false,
			Detail:    "orchestration disabled, using stage simulator",
			CheckedAt: o.now().UTC(),
		}
	}

	health, err := o.adapter.Health(ctx)
	if err != nil {
		o.logger.Debug().Err(err).Msg("orchestration health check failed")
		health.Connected = false
		if health.Detail == "" {
			health.Detail = err.Error()
		}
	}
	if health.CheckedAt.IsZero() {
		health.CheckedAt = o.now().UTC()
	}

	return health
}

func (o *orchestrationService) VerifyCallbackSignature(body []byte, signature string) bool {
	if o.apiKey == "" {
		return true
	}
	expected := utils.HashString(string(body), o.apiKey)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}
