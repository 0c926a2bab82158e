package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tenant-vet/internal/logger"
)

const defaultInterval = 30 * time.Second

// PeriodicWorker calls a job on a ticker until its context is cancelled.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error
	logger   *logger.Logger
}

// NewPeriodicWorker creates a worker that calls job every interval. If
// interval is zero or negative it defaults to 30 seconds. The job also runs
// once right after Run starts.
func NewPeriodicWorker(name string, interval time.Duration, job func(ctx context.Context) error, logger *logger.Logger) *PeriodicWorker {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &PeriodicWorker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

func (p *PeriodicWorker) Run(ctx context.Context) {
	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("periodic worker started")
	defer p.logger.Info().Str("worker", p.name).Msg("periodic worker stopped")

	p.tick(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.tick(ctx)
		}
	}
}

func (p *PeriodicWorker) tick(ctx context.Context) {
	if err := p.job(ctx); err != nil {
		p.logger.Err(err).Str("worker", p.name).Msg("periodic job failed")
	}
}
