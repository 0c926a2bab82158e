package screening

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
	"github.com/MKhiriev/go-tenant-vet/internal/workers"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// DefaultStageDelay is the simulated duration of one stage.
const DefaultStageDelay = 2 * time.Second

// CheckProgress receives the transitions produced by the StageSimulator.
type CheckProgress interface {
	AdvanceStage(ctx context.Context, checkID string, status models.CheckStatus) error
	CompleteCheck(ctx context.Context, checkID string, patch models.CheckPatch) error
}

// StageSimulator walks a check through models.Stages, one stage per delay,
// and completes it with synthetic results. Transitions are scheduled on a
// workers.Scheduler so the whole run can be driven by a manual clock.
type StageSimulator struct {
	scheduler  workers.Scheduler
	stageDelay time.Duration
	synth      *Synthesizer
	logger     *logger.Logger
}

// NewStageSimulator returns a simulator using stageDelay between
// transitions. A non-positive delay falls back to DefaultStageDelay.
func NewStageSimulator(scheduler workers.Scheduler, stageDelay time.Duration, logger *logger.Logger) *StageSimulator {
	if stageDelay <= 0 {
		stageDelay = DefaultStageDelay
	}
	return &StageSimulator{
		scheduler:  scheduler,
		stageDelay: stageDelay,
		synth:      NewSynthesizer(),
		logger:     logger,
	}
}

// TotalDuration is the simulated time from Start to completion.
func (s *StageSimulator) TotalDuration() time.Duration {
	return s.stageDelay * time.Duration(len(models.Stages)+1)
}

// Start schedules the first transition and returns immediately. Every next
// transition is scheduled only after the previous one was applied, so no
// stage can be skipped or reordered. If progress rejects a transition the
// chain stops there. The returned channel is closed once the chain has
// ended either way.
func (s *StageSimulator) Start(ctx context.Context, check models.CheckRecord, progress CheckProgress) <-chan struct{} {
	applicant := models.CheckRequest{
		ApplicantName:   check.ApplicantName,
		Email:           check.Email,
		Phone:           check.Phone,
		PropertyAddress: check.PropertyAddress,
		DateOfBirth:     check.DateOfBirth,
		CheckLevel:      check.CheckLevel,
	}
	started := s.scheduler.Now()
	log := s.logger.WithCheck(check.ID)
	done := make(chan struct{})

	var step func(i int)
	step = func(i int) {
		if i < len(models.Stages) {
			stage := models.Stages[i]
			if err := progress.AdvanceStage(ctx, check.ID, stage); err != nil {
				log.Err(err).Str("stage", string(stage)).Msg("stage simulation stopped")
				close(done)
				return
			}
			log.Debug().Str("stage", string(stage)).Msg("check advanced")
			s.scheduler.AfterFunc(s.stageDelay, func() { step(i + 1) })
			return
		}

		patch := NormalizeResults(s.synth.Results(applicant, models.SourceSimulator))
		completedAt := s.scheduler.Now()
		elapsed := completedAt.Sub(started).Seconds()
		patch.CompletedAt = &completedAt
		patch.ProcessingTimeSeconds = &elapsed

		defer close(done)
		if err := progress.CompleteCheck(ctx, check.ID, patch); err != nil {
			log.Err(err).Msg("simulated completion rejected")
			return
		}
		log.Info().Int("score", patch.Results.OverallScore).Str("risk", string(patch.Results.RiskLevel)).Msg("simulated check completed")
	}

	s.scheduler.AfterFunc(s.stageDelay, func() { step(0) })
	return done
}
