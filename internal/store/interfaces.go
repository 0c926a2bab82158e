package store

import (
	"context"

	"github.com/MKhiriev/go-tenant-vet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserStore persists accounts and their check quota.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// DecrementQuota atomically consumes one check from a finite-tier user
	// and returns the updated user. Unlimited users are returned unchanged.
	// A user with no checks left gets ErrQuotaExhausted.
	DecrementQuota(ctx context.Context, userID int64) (models.User, error)

	// RestoreQuota gives back a check consumed by DecrementQuota. Unlimited
	// users are left untouched.
	RestoreQuota(ctx context.Context, userID int64) error

	// SetPlan overwrites the tier and the remaining checks.
	SetPlan(ctx context.Context, userID int64, tier models.Tier, checksRemaining int) (models.User, error)
}

// CheckStore persists check records and enforces their status order.
type CheckStore interface {
	Create(ctx context.Context, check models.CheckRecord) (models.CheckRecord, error)

	// Get returns the check only if it belongs to userID; otherwise
	// ErrCheckNotFound.
	Get(ctx context.Context, id string, userID int64) (models.CheckRecord, error)

	// List returns the checks of userID, newest first.
	List(ctx context.Context, userID int64) ([]models.CheckRecord, error)

	FindByWorkflow(ctx context.Context, workflowID string) (models.CheckRecord, error)

	// AttachWorkflow stores the workflow handle on its check, replacing any
	// earlier handle and last known status.
	AttachWorkflow(ctx context.Context, handle models.WorkflowHandle) error

	// Advance moves a non-terminal check to a later non-terminal status.
	Advance(ctx context.Context, id string, status models.CheckStatus) error

	// Finalize applies a terminal patch exactly once. A second call gets
	// ErrAlreadyFinalized and leaves the record untouched.
	Finalize(ctx context.Context, id string, patch models.CheckPatch) (models.CheckRecord, error)
}
