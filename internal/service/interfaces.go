package service

import (
	"context"

	"github.com/MKhiriev/go-tenant-vet/models"
)

// AuthService registers users and issues the tokens the request façade uses
// to resolve the caller.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetAccount(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// QuotaLedger admits check submissions against the caller's remaining
// allowance.
type QuotaLedger interface {
	// Admit consumes one check in a single atomic step. It returns
	// ErrQuotaExceeded when a finite allowance is exhausted; unlimited users
	// are always admitted and never decremented.
	Admit(ctx context.Context, userID int64) (models.User, error)

	// Refund gives back a check consumed by a submission that was admitted
	// but could not be stored.
	Refund(ctx context.Context, userID int64) error

	// SetPlan overwrites tier and remaining checks.
	SetPlan(ctx context.Context, userID int64, tier models.Tier, checksRemaining int) (models.User, error)
}

// CheckService is the check lifecycle engine. Submission returns as soon as
// the record exists; all further progress happens in the background.
type CheckService interface {
	Submit(ctx context.Context, userID int64, req models.CheckRequest) (models.SubmitResponse, error)
	Get(ctx context.Context, userID int64, checkID string) (models.CheckRecord, error)
	List(ctx context.Context, userID int64) ([]models.CheckRecord, error)

	// WorkflowStatus polls the orchestration dependency for the workflow of
	// an owned check.
	WorkflowStatus(ctx context.Context, userID int64, checkID string) (models.WorkflowStatus, error)

	// HandleCallback applies an inbound orchestration callback. It is
	// idempotent and acknowledges unknown workflows.
	HandleCallback(ctx context.Context, body []byte) error

	// Wait blocks until every background dispatch and stage simulation has
	// finished. Workflow deadlines still pending are not waited for.
	Wait()
}

// CheckServiceWrapper defines middleware composition for CheckService.
// Implementations wrap an existing CheckService to add behavior such as
// validation.
type CheckServiceWrapper interface {
	Wrap(CheckService) CheckService // returns a decorated CheckService applying additional behavior
}

// OrchestrationService talks to the orchestration dependency and owns the
// fallback branch of dispatch.
type OrchestrationService interface {
	// Enabled reports whether an external dependency is configured.
	Enabled() bool

	// Dispatch never fails towards the caller: when the dependency cannot
	// be used the result comes from the fallback generator and is tagged
	// with State fallback.
	Dispatch(ctx context.Context, req models.DispatchRequest) models.DispatchResult

	// PollStatus surfaces dependency failures as errors; there is no
	// synthetic substitute for a status read.
	PollStatus(ctx context.Context, workflowID string) (models.WorkflowStatus, error)

	// HealthCheck never fails; it always returns a structured result.
	HealthCheck(ctx context.Context) models.DependencyHealth

	// CallbackURL is the address handed to the dependency for results.
	CallbackURL() string

	// VerifyCallbackSignature checks the hex HMAC-SHA256 signature of an
	// inbound callback body. Without a configured API key every body passes.
	VerifyCallbackSignature(body []byte, signature string) bool
}

// PlanService exposes the static plan catalogue and applies plan changes.
type PlanService interface {
	Catalogue(ctx context.Context) []models.Plan
	ChangePlan(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
