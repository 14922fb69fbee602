package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher drives periodic refetches for the dashboard. Jobs are cron
// expressions ("@every 30s" for the default dashboard cadence) and run
// with a per-tick timeout so a hung API call cannot pile up ticks.
type Refresher struct {
	cron       *cron.Cron
	logger     *logrus.Logger
	mu         sync.Mutex
	running    bool
	jobTimeout time.Duration
}

// NewRefresher creates a stopped refresher.
func NewRefresher(logger *logrus.Logger) *Refresher {
	if logger == nil {
		logger = logrus.New()
	}
	return &Refresher{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		logger:     logger,
		jobTimeout: 20 * time.Second,
	}
}

// Add schedules a named refresh job. Jobs must be added before Start.
func (r *Refresher) Add(spec, name string, refresh func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return fmt.Errorf("cannot add job %q while running", name)
	}

	_, err := r.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.jobTimeout)
		defer cancel()

		if err := refresh(ctx); err != nil {
			r.logger.WithError(err).WithField("job", name).Warn("Scheduled refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %q with spec %q: %w", name, spec, err)
	}
	return nil
}

// Start launches the cron loop.
func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.cron.Start()
}

// Stop halts scheduling and waits for in-flight jobs.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	<-r.cron.Stop().Done()
}
