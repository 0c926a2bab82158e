package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-tenant-vet/models"
)

// memoryCheckStore keeps check records in process memory. Status updates
// are compare-and-set operations under one mutex, so of two racing
// terminal updates exactly one wins.
type memoryCheckStore struct {
	mu         sync.RWMutex
	checks     map[string]models.CheckRecord
	byWorkflow map[string]string
}

// NewMemoryCheckStore returns an empty in-memory [CheckStore].
func NewMemoryCheckStore() CheckStore {
	return &memoryCheckStore{
		checks:     make(map[string]models.CheckRecord),
		byWorkflow: make(map[string]string),
	}
}

func (s *memoryCheckStore) Create(_ context.Context, check models.CheckRecord) (models.CheckRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checks[check.ID]; ok {
		return models.CheckRecord{}, ErrCheckAlreadyExists
	}

	s.checks[check.ID] = cloneCheck(check)
	return cloneCheck(check), nil
}

func (s *memoryCheckStore) Get(_ context.Context, id string, userID int64) (models.CheckRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	check, ok := s.checks[id]
	if !ok || check.UserID != userID {
		return models.CheckRecord{}, ErrCheckNotFound
	}
	return cloneCheck(check), nil
}

func (s *memoryCheckStore) List(_ context.Context, userID int64) ([]models.CheckRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checks := make([]models.CheckRecord, 0)
	for _, check := range s.checks {
		if check.UserID == userID {
			checks = append(checks, cloneCheck(check))
		}
	}

	slices.SortFunc(checks, func(a, b models.CheckRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return checks, nil
}

func (s *memoryCheckStore) FindByWorkflow(_ context.Context, workflowID string) (models.CheckRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byWorkflow[workflowID]
	if !ok {
		return models.CheckRecord{}, ErrWorkflowNotFound
	}
	return cloneCheck(s.checks[id]), nil
}

func (s *memoryCheckStore) AttachWorkflow(_ context.Context, handle models.WorkflowHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	check, ok := s.checks[handle.CheckID]
	if !ok {
		return ErrCheckNotFound
	}

	if check.Workflow != nil && check.Workflow.WorkflowID != handle.WorkflowID {
		delete(s.byWorkflow, check.Workflow.WorkflowID)
	}

	check.Workflow = &handle
	s.checks[check.ID] = check
	s.byWorkflow[handle.WorkflowID] = check.ID

	return nil
}

func (s *memoryCheckStore) Advance(_ context.Context, id string, status models.CheckStatus) error {
	if _, ok := status.PreviousStage(); !ok {
		return ErrInvalidTransition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	check, ok := s.checks[id]
	if !ok {
		return ErrCheckNotFound
	}
	if check.Status.IsTerminal() {
		return ErrAlreadyFinalized
	}
	if !check.Status.CanAdvanceTo(status) {
		return ErrInvalidTransition
	}

	check.Status = status
	s.checks[id] = check

	return nil
}

func (s *memoryCheckStore) Finalize(_ context.Context, id string, patch models.CheckPatch) (models.CheckRecord, error) {
	if !patch.Status.IsTerminal() {
		return models.CheckRecord{}, ErrInvalidTransition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	check, ok := s.checks[id]
	if !ok {
		return models.CheckRecord{}, ErrCheckNotFound
	}
	if check.Status.IsTerminal() {
		return models.CheckRecord{}, ErrAlreadyFinalized
	}

	applyPatch(&check, patch)
	s.checks[id] = check

	return cloneCheck(check), nil
}

// applyPatch copies a terminal patch onto check.
func applyPatch(check *models.CheckRecord, patch models.CheckPatch) {
	check.Status = patch.Status
	check.Results = patch.Results
	check.Fallback = patch.Fallback
	check.Error = patch.Error
	check.CompletedAt = patch.CompletedAt
	check.ProcessingTimeSeconds = patch.ProcessingTimeSeconds
}

// cloneCheck copies the pointer fields so callers never share state with
// the store.
func cloneCheck(check models.CheckRecord) models.CheckRecord {
	if check.CompletedAt != nil {
		t := *check.CompletedAt
		check.CompletedAt = &t
	}
	if check.ProcessingTimeSeconds != nil {
		p := *check.ProcessingTimeSeconds
		check.ProcessingTimeSeconds = &p
	}
	if check.Workflow != nil {
		w := *check.Workflow
		check.Workflow = &w
	}
	if check.Results != nil {
		r := *check.Results
		r.Recommendations = slices.Clone(r.Recommendations)
		check.Results = &r
	}
	return check
}
