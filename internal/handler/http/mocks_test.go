package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	getAccountFn   func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) GetAccount(ctx context.Context, userID int64) (models.User, error) {
	return m.getAccountFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

type mockCheckService struct {
	submitFn         func(ctx context.Context, userID int64, req models.CheckRequest) (models.SubmitResponse, error)
	getFn            func(ctx context.Context, userID int64, checkID string) (models.CheckRecord, error)
	listFn           func(ctx context.Context, userID int64) ([]models.CheckRecord, error)
	workflowStatusFn func(ctx context.Context, userID int64, checkID string) (models.WorkflowStatus, error)
	callbackFn       func(ctx context.Context, body []byte) error
}

func (m *mockCheckService) Submit(ctx context.Context, userID int64, req models.CheckRequest) (models.SubmitResponse, error) {
	return m.submitFn(ctx, userID, req)
}

func (m *mockCheckService) Get(ctx context.Context, userID int64, checkID string) (models.CheckRecord, error) {
	return m.getFn(ctx, userID, checkID)
}

func (m *mockCheckService) List(ctx context.Context, userID int64) ([]models.CheckRecord, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCheckService) WorkflowStatus(ctx context.Context, userID int64, checkID string) (models.WorkflowStatus, error) {
	return m.workflowStatusFn(ctx, userID, checkID)
}

func (m *mockCheckService) HandleCallback(ctx context.Context, body []byte) error {
	if m.callbackFn != nil {
		return m.callbackFn(ctx, body)
	}
	return nil
}

func (m *mockCheckService) Wait() {}

type mockOrchestrationService struct {
	health     models.DependencyHealth
	signatures map[string]string
}

func (m *mockOrchestrationService) Enabled() bool { return false }

func (m *mockOrchestrationService) Dispatch(context.Context, models.DispatchRequest) models.DispatchResult {
	return models.DispatchResult{}
}

func (m *mockOrchestrationService) PollStatus(context.Context, string) (models.WorkflowStatus, error) {
	return models.WorkflowStatus{}, nil
}

func (m *mockOrchestrationService) HealthCheck(context.Context) models.DependencyHealth {
	return m.health
}

func (m *mockOrchestrationService) CallbackURL() string { return "" }

// VerifyCallbackSignature accepts everything unless signatures is set, in
// which case the body must map to the given signature.
func (m *mockOrchestrationService) VerifyCallbackSignature(body []byte, signature string) bool {
	if m.signatures == nil {
		return true
	}
	want, ok := m.signatures[string(body)]
	return ok && want == signature
}

type mockPlanService struct {
	plans      []models.Plan
	changePlan func(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error)
}

func (m *mockPlanService) Catalogue(context.Context) []models.Plan {
	return m.plans
}

func (m *mockPlanService) ChangePlan(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error) {
	return m.changePlan(ctx, userID, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// injectNopLogger puts a nop logger into the request context the same way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
