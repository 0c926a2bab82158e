package screening

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tenant-vet/internal/workers"
	"github.com/MKhiriev/go-tenant-vet/models"
)

// DefaultFallbackDelay is the simulated latency of a fallback result.
const DefaultFallbackDelay = 2 * time.Second

// FallbackGenerator synthesizes results when the orchestration dependency
// cannot be reached.
type FallbackGenerator struct {
	scheduler workers.Scheduler
	delay     time.Duration
	synth     *Synthesizer
}

// NewFallbackGenerator returns a generator that waits delay on scheduler
// before producing a result. A non-positive delay falls back to
// DefaultFallbackDelay.
func NewFallbackGenerator(scheduler workers.Scheduler, delay time.Duration) *FallbackGenerator {
	if delay <= 0 {
		delay = DefaultFallbackDelay
	}
	return &FallbackGenerator{
		scheduler: scheduler,
		delay:     delay,
		synth:     NewSynthesizer(),
	}
}

// Generate waits for the simulated delay and returns a complete Results
// object tagged with SourceFallback. It returns ctx.Err() if ctx is done
// first.
func (g *FallbackGenerator) Generate(ctx context.Context, applicant models.CheckRequest) (models.Results, error) {
	select {
	case <-ctx.Done():
		return models.Results{}, ctx.Err()
	case <-g.scheduler.After(g.delay):
	}

	return g.synth.Results(applicant, models.SourceFallback), nil
}
