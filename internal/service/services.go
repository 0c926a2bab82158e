package service

import (
	"fmt"

	"github.com/MKhiriev/go-tenant-vet/internal/adapter"
	"github.com/MKhiriev/go-tenant-vet/internal/config"
	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/screening"
	"github.com/MKhiriev/go-tenant-vet/internal/store"
	"github.com/MKhiriev/go-tenant-vet/internal/validators"
	"github.com/MKhiriev/go-tenant-vet/internal/workers"
)

type Services struct {
	AuthService          AuthService
	CheckService         CheckService
	OrchestrationService OrchestrationService
	PlanService          PlanService
	QuotaLedger          QuotaLedger
	AppInfoService       AppInfoService
}

// NewServices wires the service layer. orchestrationAdapter may be nil, in
// which case every check runs through the stage simulator.
func NewServices(
	storages *store.Storages,
	orchestrationAdapter adapter.OrchestrationAdapter,
	scheduler workers.Scheduler,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	ledger := NewQuotaLedger(storages.UserStore, logger)
	orchestration := NewOrchestrationService(
		orchestrationAdapter,
		screening.NewFallbackGenerator(scheduler, cfg.Workers.FallbackDelay),
		cfg.Adapter,
		logger,
	)

	checkService := NewCheckService(
		storages.CheckStore,
		ledger,
		orchestration,
		screening.NewStageSimulator(scheduler, cfg.Workers.StageDuration, logger),
		scheduler,
		cfg.App.EstimatedCompletion,
		logger,
	)

	return &Services{
		AuthService:          NewAuthService(storages.UserStore, validator, cfg.App, logger),
		CheckService:         NewCheckValidationService(validator).Wrap(checkService),
		OrchestrationService: orchestration,
		PlanService:          NewPlanService(ledger, validator, logger),
		QuotaLedger:          ledger,
		AppInfoService:       appInfoService,
	}, nil
}
