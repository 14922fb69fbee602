package loader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/metrics"
	"github.com/x88a9/edge-lab/internal/model"
)

// RunView is everything the run detail screen needs in one composite
// load. The run itself is the primary fetch; trades, metrics and the
// equity series fail soft to their zero values with the error kept
// per-field so each panel can show its own fallback.
type RunView struct {
	Run        model.Run
	Trades     []model.Trade
	TradesErr  error
	Metrics    model.MetricsSnapshot
	MetricsErr error
	Equity     []model.EquityPoint
	EquityErr  error

	// Breadcrumb labels, best effort. Empty when resolution failed.
	VariantLabel string
	SystemLabel  string
}

// AnalyticsBundle collects the per-panel analytics endpoints for the
// run detail tabs. Every field fails soft; a panel with a nil value
// renders its "not computed" fallback.
type AnalyticsBundle struct {
	MonteCarlo     *model.MonteCarloSummary
	MonteCarloErr  error
	WalkForward    []model.WalkForwardWindow
	WalkForwardErr error
	Regime         *model.RegimeDetection
	RegimeErr      error
	Kelly          *model.KellySimulation
	KellyErr       error
	RiskOfRuin     *model.RiskOfRuinSummary
	RiskOfRuinErr  error
}

// RunLoader builds composite run views. Variant and system labels are
// cached with a TTL since the breadcrumb rarely changes and is not
// worth two extra round trips per view.
type RunLoader struct {
	client *api.Client
	labels *cache.Cache
	logger *logrus.Logger
}

// NewRunLoader creates a run loader with the given label cache TTL.
func NewRunLoader(client *api.Client, labelTTL time.Duration, logger *logrus.Logger) *RunLoader {
	if logger == nil {
		logger = logrus.New()
	}
	return &RunLoader{
		client: client,
		labels: cache.New(labelTTL, 2*labelTTL),
		logger: logger,
	}
}

// Load fetches the run and fans out its sub-resources concurrently.
// Only a failure of the run fetch itself fails the whole view.
func (l *RunLoader) Load(ctx context.Context, runID string) (RunView, error) {
	run, err := l.client.GetRun(ctx, runID)
	if err != nil {
		return RunView{}, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	view := RunView{Run: run}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		view.Trades, view.TradesErr = l.client.RunTrades(ctx, runID)
	}()
	go func() {
		defer wg.Done()
		view.Metrics, view.MetricsErr = l.client.RunMetrics(ctx, runID)
	}()
	go func() {
		defer wg.Done()
		view.Equity, view.EquityErr = l.client.RunEquity(ctx, runID)
	}()
	go func() {
		defer wg.Done()
		view.VariantLabel, view.SystemLabel = l.resolveLabels(ctx, run.VariantID)
	}()
	wg.Wait()

	for _, err := range []error{view.TradesErr, view.MetricsErr, view.EquityErr} {
		if err != nil {
			l.logger.WithError(err).WithField("run_id", runID).Warn("Run sub-resource failed, panel degrades")
		}
	}
	return view, nil
}

// Analytics fans out the analytics panel endpoints concurrently. Each
// panel fails independently.
func (l *RunLoader) Analytics(ctx context.Context, runID string, ruin model.RiskOfRuinParams) AnalyticsBundle {
	var bundle AnalyticsBundle

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		mc, err := l.client.RunMonteCarlo(ctx, runID)
		if err != nil {
			bundle.MonteCarloErr = err
			return
		}
		bundle.MonteCarlo = &mc
	}()
	go func() {
		defer wg.Done()
		bundle.WalkForward, bundle.WalkForwardErr = l.client.RunWalkForward(ctx, runID)
	}()
	go func() {
		defer wg.Done()
		regime, err := l.client.RunRegimeDetection(ctx, runID)
		if err != nil {
			bundle.RegimeErr = err
			return
		}
		bundle.Regime = &regime
	}()
	go func() {
		defer wg.Done()
		kelly, err := l.client.RunKellySimulation(ctx, runID)
		if err != nil {
			bundle.KellyErr = err
			return
		}
		bundle.Kelly = &kelly
	}()
	go func() {
		defer wg.Done()
		ror, err := l.client.RunRiskOfRuin(ctx, runID, ruin)
		if err != nil {
			bundle.RiskOfRuinErr = err
			return
		}
		bundle.RiskOfRuin = &ror
	}()
	wg.Wait()

	return bundle
}

// resolveLabels walks run -> variant -> system for breadcrumb labels.
// Failures are logged and swallowed; the breadcrumb degrades to ids.
func (l *RunLoader) resolveLabels(ctx context.Context, variantID string) (variantLabel, systemLabel string) {
	if variantID == "" {
		return "", ""
	}

	key := "variant:" + variantID
	if cached, ok := l.labels.Get(key); ok {
		metrics.LabelCacheTotal.WithLabelValues("hit").Inc()
		pair := cached.([2]string)
		return pair[0], pair[1]
	}
	metrics.LabelCacheTotal.WithLabelValues("miss").Inc()

	variant, err := l.client.GetVariant(ctx, variantID)
	if err != nil {
		l.logger.WithError(err).WithField("variant_id", variantID).Debug("Label resolution failed")
		return "", ""
	}
	variantLabel = variant.Label()

	if variant.StrategyID != "" {
		system, err := l.client.GetSystem(ctx, variant.StrategyID)
		if err != nil {
			l.logger.WithError(err).WithField("system_id", variant.StrategyID).Debug("Label resolution failed")
		} else {
			systemLabel = system.Label()
		}
	}

	l.labels.Set(key, [2]string{variantLabel, systemLabel}, cache.DefaultExpiration)
	return variantLabel, systemLabel
}
