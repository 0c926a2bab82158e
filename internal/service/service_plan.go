package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/validators"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// catalogue is the static plan list, cheapest first.
var catalogue = []models.Plan{
	{Name: models.TierTrial, PriceCents: 0, IncludedChecks: 1},
	{Name: models.TierStarter, PriceCents: 4900, IncludedChecks: 10},
	{Name: models.TierProfessional, PriceCents: 14900, IncludedChecks: 50},
	{Name: models.TierEnterprise, PriceCents: 49900, IncludedChecks: models.UnlimitedChecks},
}

// PlanFor returns the catalogue entry of tier.
func PlanFor(tier models.Tier) (models.Plan, bool) {
	i := slices.IndexFunc(catalogue, func(p models.Plan) bool { return p.Name == tier })
	if i < 0 {
		return models.Plan{}, false
	}
	return catalogue[i], true
}

type planService struct {
	ledger    QuotaLedger
	validator validators.Validator

	logger *logger.Logger
}

func NewPlanService(ledger QuotaLedger, validator validators.Validator, logger *logger.Logger) PlanService {
	return &planService{
		ledger:    ledger,
		validator: validator,
		logger:    logger,
	}
}

func (p *planService) Catalogue(ctx context.Context) []models.Plan {
	return slices.Clone(catalogue)
}

// ChangePlan applies the catalogue quota of the requested plan. It is the
// seam used once a payment has been confirmed.
func (p *planService) ChangePlan(ctx context.Context, userID int64, req models.SubscriptionRequest) (models.User, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.User{}, ErrUnknownPlan
	}

	plan, ok := PlanFor(req.Plan)
	if !ok {
		return models.User{}, ErrUnknownPlan
	}

	return p.ledger.SetPlan(ctx, userID, plan.Name, plan.IncludedChecks)
}
