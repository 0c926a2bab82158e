package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/internal/validators"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// CheckValidationService rejects malformed submissions before they reach
// the quota ledger, so an invalid request never consumes a check.
type CheckValidationService struct {
	inner     CheckService
	validator validators.Validator
}

func NewCheckValidationService(validator validators.Validator) CheckServiceWrapper {
	return &CheckValidationService{
		validator: validator,
	}
}

func (v *CheckValidationService) Submit(ctx context.Context, userID int64, req models.CheckRequest) (models.SubmitResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SubmitResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Submit(ctx, userID, req)
}

func (v *CheckValidationService) Get(ctx context.Context, userID int64, checkID string) (models.CheckRecord, error) {
	if checkID == "" {
		return models.CheckRecord{}, ErrCheckNotFound
	}
	return v.inner.Get(ctx, userID, checkID)
}

func (v *CheckValidationService) List(ctx context.Context, userID int64) ([]models.CheckRecord, error) {
	return v.inner.List(ctx, userID)
}

func (v *CheckValidationService) WorkflowStatus(ctx context.Context, userID int64, checkID string) (models.WorkflowStatus, error) {
	if checkID == "" {
		return models.WorkflowStatus{}, ErrCheckNotFound
	}
	return v.inner.WorkflowStatus(ctx, userID, checkID)
}

func (v *CheckValidationService) HandleCallback(ctx context.Context, body []byte) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidCallback)
	}
	return v.inner.HandleCallback(ctx, body)
}

func (v *CheckValidationService) Wait() {
	v.inner.Wait()
}

func (v *CheckValidationService) Wrap(wrapper CheckService) CheckService {
	v.inner = wrapper
	return v
}
