// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/screening"
	"github.com/MKhiriev/go-tenant-vet/internal/store"
	"github.com/MKhiriev/go-tenant-vet/internal/utils"
	"github.com/MKhiriev/go-tenant-vet/internal/validators"
	"github.com/MKhiriev/go-tenant-vet/internal/workers"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// checkService is the check lifecycle engine. It owns admission, record
// creation and the asynchronous pipeline that drives a check to a terminal
// state: the stage simulator when no orchestration dependency is
// configured, the dispatch state machine otherwise.
//
// Every terminal write goes through store.CheckStore.Finalize, which
// accepts exactly one of them; later ones fail with
// store.ErrAlreadyFinalized and are dropped here.
type checkService struct {
	checks        store.CheckStore
	ledger        QuotaLedger
	orchestration OrchestrationService
	simulator     *screening.StageSimulator

	ids                 *utils.UUIDGenerator
	scheduler           workers.Scheduler
	estimatedCompletion time.Duration

	// inflight tracks background dispatches and stage simulations so
	// shutdown can wait for them.
	inflight sync.WaitGroup

	// deadlines holds the timeout of every accepted workflow still waiting
	// for its callback, keyed by check id.
	deadlinesMu sync.Mutex
	deadlines   map[string]workers.Timer

	early *earlyCallbacks

	logger *logger.Logger
}

// NewCheckService constructs the lifecycle engine. Validation is not part of
// it; wrap the result with NewCheckValidationService.
func NewCheckService(
	checks store.CheckStore,
	ledger QuotaLedger,
	orchestration OrchestrationService,
	simulator *screening.StageSimulator,
	scheduler workers.Scheduler,
	estimatedCompletion time.Duration,
	logger *logger.Logger,
) CheckService {
	return &checkService{
		checks:              checks,
		ledger:              ledger,
		orchestration:       orchestration,
		simulator:           simulator,
		ids:                 utils.NewUUIDGenerator(),
		scheduler:           scheduler,
		estimatedCompletion: estimatedCompletion,
		deadlines:           make(map[string]workers.Timer),
		early:               newEarlyCallbacks(),
		logger:              logger,
	}
}

// Submit admits the submission against the caller's quota, stores the
// masked record in processing and starts the background pipeline. It
// returns without waiting for any stage.
func (c *checkService) Submit(ctx context.Context, userID int64, req models.CheckRequest) (models.SubmitResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := c.ledger.Admit(ctx, userID); err != nil {
		return models.SubmitResponse{}, err
	}

	now := c.scheduler.Now().UTC()
	check := models.CheckRecord{
		ID:                  c.ids.Generate(),
		UserID:              userID,
		ApplicantName:       strings.TrimSpace(req.ApplicantName),
		Email:               strings.TrimSpace(req.Email),
		Phone:               strings.TrimSpace(req.Phone),
		PropertyAddress:     strings.TrimSpace(req.PropertyAddress),
		DateOfBirth:         req.DateOfBirth,
		MaskedSensitiveID:   validators.MaskSensitiveID(req.SensitiveID),
		CheckLevel:          req.CheckLevel,
		Status:              models.StatusProcessing,
		CreatedAt:           now,
		EstimatedCompletion: now.Add(c.estimatedCompletion),
	}

	created, err := c.checks.Create(ctx, check)
	if err != nil {
		log.Err(err).Str("func", "*checkService.Submit").Int64("user_id", userID).Msg("check creation failed, refunding quota")
		if refundErr := c.ledger.Refund(ctx, userID); refundErr != nil {
			log.Err(refundErr).Int64("user_id", userID).Msg("quota refund failed")
		}
		return models.SubmitResponse{}, fmt.Errorf("check creation failed: %w", err)
	}

	log.Info().
		Str("check_id", created.ID).
		Int64("user_id", userID).
		Str("check_level", string(created.CheckLevel)).
		Msg("check submitted")

	c.start(context.WithoutCancel(ctx), created, req.SensitiveID)

	return models.SubmitResponse{
		CheckID:             created.ID,
		Status:              created.Status,
		EstimatedCompletion: created.EstimatedCompletion,
	}, nil
}

// start hands the check to the simulator or to a background dispatch.
// sensitiveID is the raw identifier; it only travels to the dependency.
func (c *checkService) start(ctx context.Context, check models.CheckRecord, sensitiveID string) {
	if !c.orchestration.Enabled() {
		c.inflight.Add(1)
		done := c.simulator.Start(ctx, check, c)
		go func() {
			<-done
			c.inflight.Done()
		}()
		return
	}

	req := models.DispatchRequest{
		CheckID:         check.ID,
		ApplicantName:   check.ApplicantName,
		Email:           check.Email,
		Phone:           check.Phone,
		PropertyAddress: check.PropertyAddress,
		DateOfBirth:     check.DateOfBirth,
		SensitiveID:     sensitiveID,
		CheckLevel:      check.CheckLevel,
		DataSources:     check.CheckLevel.DataSources(),
		CallbackURL:     c.orchestration.CallbackURL(),
	}

	c.inflight.Add(1)
	c.early.begin()
	go func() {
		defer c.inflight.Done()
		defer c.early.end()
		c.dispatch(ctx, check, req)
	}()
}

func (c *checkService) dispatch(ctx context.Context, check models.CheckRecord, req models.DispatchRequest) {
	log := c.logger.WithCheck(check.ID)

	result := c.orchestration.Dispatch(ctx, req)

	switch {
	case result.State == models.DispatchExternalOK:
		workflowID := result.Handle.WorkflowID
		if err := c.checks.AttachWorkflow(ctx, *result.Handle); err != nil {
			log.Err(err).Str("workflow_id", workflowID).Msg("attaching workflow failed")
		} else {
			c.replayEarlyCallbacks(ctx, workflowID)
		}

		raw := result.Result.Raw
		if len(raw) == 0 {
			raw, _ = json.Marshal(result.Result)
		}

		patch, err := screening.Normalize(raw, screening.FormatOrchestration)
		if err != nil {
			log.Err(err).Str("payload", string(raw)).Msg("workflow result normalization failed")
		}
		if !patch.Status.IsTerminal() {
			c.awaitCallback(ctx, check, workflowID)
			return
		}
		c.finalize(ctx, check, patch)

	case result.Success:
		raw, err := json.Marshal(result.Results)
		if err != nil {
			c.finalize(ctx, check, models.CheckPatch{Status: models.StatusError, Error: err.Error()})
			return
		}

		patch, err := screening.Normalize(raw, screening.FormatFallback)
		if err != nil {
			log.Err(err).Msg("fallback result normalization failed")
		}
		log.Info().AnErr("cause", result.Err).Msg("check completed with fallback results")
		c.finalize(ctx, check, patch)

	default:
		log.Err(result.Err).Msg("dispatch produced no result")
		c.finalize(ctx, check, models.CheckPatch{Status: models.StatusError, Error: result.Err.Error()})
	}
}

// replayEarlyCallbacks applies the callbacks that arrived for workflowID
// before its dispatch returned.
func (c *checkService) replayEarlyCallbacks(ctx context.Context, workflowID string) {
	for _, body := range c.early.take(workflowID) {
		if err := c.HandleCallback(ctx, body); err != nil {
			c.logger.Err(err).Str("workflow_id", workflowID).Msg("replaying early callback failed")
		}
	}
}

// awaitCallback arms the deadline of an accepted workflow whose result is
// not final yet. The deadline is the check's estimated completion.
func (c *checkService) awaitCallback(ctx context.Context, check models.CheckRecord, workflowID string) {
	log := c.logger.WithCheck(check.ID)

	if current, err := c.checks.FindByWorkflow(ctx, workflowID); err == nil && current.Status.IsTerminal() {
		log.Debug().Str("workflow_id", workflowID).Msg("workflow already finalized by callback")
		return
	}

	wait := check.EstimatedCompletion.Sub(c.scheduler.Now())
	if wait <= 0 {
		wait = c.estimatedCompletion
	}

	c.deadlinesMu.Lock()
	c.deadlines[check.ID] = c.scheduler.AfterFunc(wait, func() {
		c.expireWorkflow(ctx, check, workflowID)
	})
	c.deadlinesMu.Unlock()

	log.Info().Str("workflow_id", workflowID).Dur("deadline", wait).Msg("workflow result not final, awaiting callback")
}

// expireWorkflow runs when an accepted workflow did not deliver a final
// result before its deadline. One last poll may still carry the result;
// otherwise the check ends in error.
func (c *checkService) expireWorkflow(ctx context.Context, check models.CheckRecord, workflowID string) {
	log := c.logger.WithCheck(check.ID)

	current, err := c.checks.FindByWorkflow(ctx, workflowID)
	if err == nil && current.Status.IsTerminal() {
		c.clearDeadline(check.ID)
		return
	}

	patch := models.CheckPatch{Status: models.StatusError, Error: ErrWorkflowTimedOut.Error()}

	status, err := c.orchestration.PollStatus(ctx, workflowID)
	if err != nil {
		log.Err(err).Str("workflow_id", workflowID).Msg("last workflow poll failed")
	} else {
		raw := []byte(status.Results)
		if len(raw) == 0 {
			raw, _ = json.Marshal(models.WorkflowResult{WorkflowID: workflowID, Status: status.Status, Error: status.Error})
		}
		if polled, err := screening.Normalize(raw, screening.FormatOrchestration); err == nil && polled.Status.IsTerminal() {
			patch = polled
		}
	}

	if patch.Status == models.StatusError && patch.Error == ErrWorkflowTimedOut.Error() {
		log.Warn().Str("workflow_id", workflowID).Msg("workflow deadline passed without a final result")
	}
	c.finalize(ctx, check, patch)
}

// clearDeadline stops the pending workflow timeout of checkID, if any.
func (c *checkService) clearDeadline(checkID string) {
	c.deadlinesMu.Lock()
	defer c.deadlinesMu.Unlock()

	if timer, ok := c.deadlines[checkID]; ok {
		timer.Stop()
		delete(c.deadlines, checkID)
	}
}

// finalize stamps the completion time and writes the terminal patch. A
// record that already reached a terminal state is left untouched.
func (c *checkService) finalize(ctx context.Context, check models.CheckRecord, patch models.CheckPatch) {
	log := c.logger.WithCheck(check.ID)
	c.clearDeadline(check.ID)

	now := c.scheduler.Now().UTC()
	if patch.CompletedAt == nil {
		patch.CompletedAt = &now
	}
	if patch.ProcessingTimeSeconds == nil {
		elapsed := patch.CompletedAt.Sub(check.CreatedAt).Seconds()
		patch.ProcessingTimeSeconds = &elapsed
	}

	final, err := c.checks.Finalize(ctx, check.ID, patch)
	switch {
	case errors.Is(err, store.ErrAlreadyFinalized):
		log.Debug().Str("status", string(patch.Status)).Msg("check already finalized, terminal update ignored")
	case err != nil:
		log.Err(err).Str("status", string(patch.Status)).Msg("finalizing check failed")
	default:
		log.Info().Str("status", string(final.Status)).Bool("fallback", final.Fallback).Msg("check finalized")
	}
}

// AdvanceStage implements screening.CheckProgress.
func (c *checkService) AdvanceStage(ctx context.Context, checkID string, status models.CheckStatus) error {
	return c.checks.Advance(ctx, checkID, status)
}

// CompleteCheck implements screening.CheckProgress.
func (c *checkService) CompleteCheck(ctx context.Context, checkID string, patch models.CheckPatch) error {
	_, err := c.checks.Finalize(ctx, checkID, patch)
	if errors.Is(err, store.ErrAlreadyFinalized) {
		c.logger.WithCheck(checkID).Debug().Msg("check already finalized, simulated completion ignored")
		return nil
	}
	return err
}

// Get returns the caller's check. Absent and foreign checks are
// indistinguishable.
func (c *checkService) Get(ctx context.Context, userID int64, checkID string) (models.CheckRecord, error) {
	check, err := c.checks.Get(ctx, checkID, userID)
	if errors.Is(err, store.ErrCheckNotFound) {
		return models.CheckRecord{}, ErrCheckNotFound
	}
	if err != nil {
		return models.CheckRecord{}, fmt.Errorf("check lookup failed: %w", err)
	}
	return check, nil
}

func (c *checkService) List(ctx context.Context, userID int64) ([]models.CheckRecord, error) {
	checks, err := c.checks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check listing failed: %w", err)
	}
	return checks, nil
}

func (c *checkService) WorkflowStatus(ctx context.Context, userID int64, checkID string) (models.WorkflowStatus, error) {
	check, err := c.Get(ctx, userID, checkID)
	if err != nil {
		return models.WorkflowStatus{}, err
	}
	if check.Workflow == nil {
		return models.WorkflowStatus{}, ErrNoWorkflow
	}

	status, err := c.orchestration.PollStatus(ctx, check.Workflow.WorkflowID)
	if err != nil {
		return models.WorkflowStatus{}, err
	}

	handle := *check.Workflow
	handle.LastStatus = status.Status
	if err := c.checks.AttachWorkflow(ctx, handle); err != nil {
		logger.FromContext(ctx).Err(err).Str("check_id", checkID).Msg("recording workflow status failed")
	}

	return status, nil
}

// HandleCallback applies an orchestration callback. Unknown workflows and
// callbacks for already finalized checks are acknowledged without changes.
// A callback that overtakes its own dispatch response is held and applied
// once the workflow is attached. Payloads that cannot be normalized finalize
// the check with status error.
func (c *checkService) HandleCallback(ctx context.Context, body []byte) error {
	log := logger.FromContext(ctx)

	var payload models.CallbackPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCallback, err)
	}
	if strings.TrimSpace(payload.WorkflowID) == "" {
		return fmt.Errorf("%w: missing workflowId", ErrInvalidCallback)
	}

	check, err := c.checks.FindByWorkflow(ctx, payload.WorkflowID)
	if errors.Is(err, store.ErrWorkflowNotFound) {
		// the dispatch may attach the workflow between the lookup and the
		// hold, so look again before giving up
		held := c.early.hold(payload.WorkflowID, body)
		check, err = c.checks.FindByWorkflow(ctx, payload.WorkflowID)
		if errors.Is(err, store.ErrWorkflowNotFound) {
			if held {
				log.Info().Str("workflow_id", payload.WorkflowID).Msg("callback held until its dispatch returns")
			} else {
				log.Warn().Str("workflow_id", payload.WorkflowID).Msg("callback for unknown workflow acknowledged")
			}
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("workflow lookup failed: %w", err)
	}

	if check.Status.IsTerminal() {
		log.Debug().Str("check_id", check.ID).Str("workflow_id", payload.WorkflowID).Msg("callback for finalized check ignored")
		return nil
	}

	if check.Workflow != nil && payload.Status != "" {
		handle := *check.Workflow
		handle.LastStatus = payload.Status
		if err := c.checks.AttachWorkflow(ctx, handle); err != nil {
			log.Err(err).Str("check_id", check.ID).Msg("recording workflow status failed")
		}
	}

	patch, err := screening.Normalize(body, screening.FormatCallback)
	if err != nil {
		log.Err(err).Str("check_id", check.ID).Str("payload", string(body)).Msg("callback normalization failed")
	}
	if !patch.Status.IsTerminal() {
		log.Info().Str("check_id", check.ID).Str("status", payload.Status).Msg("non-final callback recorded")
		return nil
	}

	c.finalize(ctx, check, patch)
	return nil
}

func (c *checkService) Wait() {
	c.inflight.Wait()
}

// maxEarlyCallbacks bounds the callbacks held for workflows not attached yet.
const maxEarlyCallbacks = 256

// earlyCallbacks holds callbacks whose workflow id is unknown while at least
// one dispatch is in flight. The provider may call back before its dispatch
// response has been read. Everything held is dropped once no dispatch is in
// flight any more.
type earlyCallbacks struct {
	mu          sync.Mutex
	dispatching int
	size        int
	held        map[string][][]byte
}

func newEarlyCallbacks() *earlyCallbacks {
	return &earlyCallbacks{held: make(map[string][][]byte)}
}

func (e *earlyCallbacks) begin() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatching++
}

func (e *earlyCallbacks) end() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dispatching--
	if e.dispatching == 0 && e.size > 0 {
		e.held = make(map[string][][]byte)
		e.size = 0
	}
}

// hold keeps body for workflowID. It reports false when no dispatch is in
// flight or the buffer is full.
func (e *earlyCallbacks) hold(workflowID string, body []byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dispatching == 0 || e.size >= maxEarlyCallbacks {
		return false
	}
	e.held[workflowID] = append(e.held[workflowID], bytes.Clone(body))
	e.size++
	return true
}

// take removes and returns the callbacks held for workflowID in arrival order.
func (e *earlyCallbacks) take(workflowID string) [][]byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	bodies := e.held[workflowID]
	delete(e.held, workflowID)
	e.size -= len(bodies)
	return bodies
}
