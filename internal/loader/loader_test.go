package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/model"
)

func testAPI(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := api.DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	return api.NewClient(cfg, api.NewSession(filepath.Join(t.TempDir(), "token")), nil)
}

func TestListFetchState(t *testing.T) {
	var calls atomic.Int32
	list := NewList(func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("boom")
		}
		return []string{"a", "b"}, nil
	})

	data, loading, err := list.State()
	assert.Nil(t, data)
	assert.False(t, loading)
	assert.NoError(t, err)

	require.Error(t, list.Refetch(context.Background()))
	_, _, err = list.State()
	assert.Error(t, err)

	require.NoError(t, list.Refetch(context.Background()))
	data, loading, err = list.State()
	assert.Equal(t, []string{"a", "b"}, data)
	assert.False(t, loading)
	assert.NoError(t, err)
}

func TestListStaleFetchDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	list := NewList(func(ctx context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			<-release
			return []int{1}, nil
		}
		return []int{2}, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		list.Refetch(context.Background())
	}()

	// Wait for the first fetch to be in flight, then supersede it.
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, list.Refetch(context.Background()))

	close(release)
	<-done

	assert.Equal(t, []int{2}, list.Data(), "superseded fetch must not overwrite the newer result")
}

func TestSnapshotPollerResolvesAfterPending(t *testing.T) {
	var calls atomic.Int32
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 3 {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"snapshot not found"}`))
			return
		}
		w.Write([]byte(`{"run_id":"r1","version":2,"is_dirty":false}`))
	}))

	poller := NewSnapshotPoller(client, time.Millisecond, 10)
	snapshot, err := poller.Wait(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", snapshot.RunID)
	assert.Equal(t, 2, snapshot.Version)
	assert.Equal(t, int32(4), calls.Load(), "poller must stop on first resolution")
}

func TestSnapshotPollerExhausts(t *testing.T) {
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	poller := NewSnapshotPoller(client, time.Millisecond, 3)
	_, err := poller.Wait(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrPollExhausted)
}

func TestSnapshotPollerStopsOnTerminalError(t *testing.T) {
	var calls atomic.Int32
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))

	poller := NewSnapshotPoller(client, time.Millisecond, 10)
	_, err := poller.Wait(context.Background(), "r1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPollExhausted)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSnapshotPollerContextCancel(t *testing.T) {
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	poller := NewSnapshotPoller(client, time.Hour, 10)

	done := make(chan error, 1)
	go func() {
		_, err := poller.Wait(ctx, "r1")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("poller did not observe cancellation")
	}
}

func TestRunViewSoftFailsSubResources(t *testing.T) {
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/runs/r1":
			w.Write([]byte(`{"id":"r1","variant_id":"v1","status":"open","run_type":"backtest","initial_capital":10000}`))
		case "/runs/r1/trades":
			w.Write([]byte(`[{"id":"t1","run_id":"r1","entry_price":100,"exit_price":105,"size":1,"direction":"long","raw_return":0.05,"log_return":0.0488}]`))
		case "/runs/r1/metrics":
			w.WriteHeader(http.StatusInternalServerError)
		case "/runs/r1/equity":
			w.Write([]byte(`{"equity":[1.0,1.05]}`))
		case "/variants/v1":
			w.Write([]byte(`{"id":"v1","strategy_id":"s1","name":"breakout","display_name":"Breakout v1","version":1}`))
		case "/systems/s1":
			w.Write([]byte(`{"id":"s1","name":"trend","display_name":"Trend Following","asset":"EURUSD"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	lo := NewRunLoader(client, time.Minute, nil)
	view, err := lo.Load(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "r1", view.Run.ID)
	require.Len(t, view.Trades, 1)
	assert.Error(t, view.MetricsErr, "metrics failure degrades, not fails")
	require.Len(t, view.Equity, 2)
	assert.Equal(t, 1, view.Equity[1].Time)
	assert.Equal(t, "Breakout v1", view.VariantLabel)
	assert.Equal(t, "Trend Following", view.SystemLabel)
}

func TestRunViewPrimaryFailureFails(t *testing.T) {
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	lo := NewRunLoader(client, time.Minute, nil)
	_, err := lo.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestRunViewLabelCache(t *testing.T) {
	var variantCalls atomic.Int32
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/variants/v1":
			variantCalls.Add(1)
			w.Write([]byte(`{"id":"v1","strategy_id":"s1","name":"breakout","version":1}`))
		case r.URL.Path == "/systems/s1":
			w.Write([]byte(`{"id":"s1","name":"trend","asset":"EURUSD"}`))
		case r.URL.Path == "/runs/r1" || r.URL.Path == "/runs/r2":
			fmt.Fprintf(w, `{"id":%q,"variant_id":"v1","status":"open","run_type":"backtest","initial_capital":1}`, filepath.Base(r.URL.Path))
		default:
			w.Write([]byte(`[]`))
		}
	}))

	lo := NewRunLoader(client, time.Minute, nil)
	_, err := lo.Load(context.Background(), "r1")
	require.NoError(t, err)
	_, err = lo.Load(context.Background(), "r2")
	require.NoError(t, err)

	assert.Equal(t, int32(1), variantCalls.Load(), "second view must hit the label cache")
}

func TestAnalyticsBundlePanelsFailIndependently(t *testing.T) {
	client := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/runs/r1/monte-carlo":
			w.Write([]byte(`{"mean_final_return":0.42}`))
		case "/runs/r1/walk-forward":
			w.Write([]byte(`[{"train_expectancy":0.2,"test_expectancy":0.1,"train_sharpe":1.1,"test_sharpe":0.9}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	lo := NewRunLoader(client, time.Minute, nil)
	bundle := lo.Analytics(context.Background(), "r1", model.RiskOfRuinParams{})

	require.NotNil(t, bundle.MonteCarlo)
	assert.Equal(t, 0.42, bundle.MonteCarlo.MeanFinalReturn)
	require.Len(t, bundle.WalkForward, 1)
	assert.Nil(t, bundle.Regime)
	assert.Error(t, bundle.RegimeErr)
	assert.Nil(t, bundle.Kelly)
	assert.Nil(t, bundle.RiskOfRuin)
}

func TestRefresherRunsJob(t *testing.T) {
	var ticks atomic.Int32
	r := NewRefresher(nil)
	require.NoError(t, r.Add("@every 10ms", "test", func(ctx context.Context) error {
		ticks.Add(1)
		return nil
	}))

	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestRefresherRejectsAddWhileRunning(t *testing.T) {
	r := NewRefresher(nil)
	r.Start()
	defer r.Stop()

	err := r.Add("@every 1s", "late", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}

func TestRefresherRejectsBadSpec(t *testing.T) {
	r := NewRefresher(nil)
	err := r.Add("not a cron spec", "bad", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
}
