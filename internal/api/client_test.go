package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x88a9/edge-lab/internal/model"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := NewSession(filepath.Join(t.TempDir(), "token"))
	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.MaxRetries = 2
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RateLimit = 1000
	return NewClient(cfg, session, nil), session
}

func TestLoginStoresToken(t *testing.T) {
	client, session := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	}))

	err := client.Login(context.Background(), model.Credentials{
		Email:    "quant@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token())
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	client, session := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	require.NoError(t, session.SetToken("tok-abc"))

	_, err := client.ListSystems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestUnauthorizedFiresHookOnce(t *testing.T) {
	client, session := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, session.SetToken("stale"))

	var fired atomic.Int32
	session.OnUnauthorized(func() { fired.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.ListSystems(context.Background())
			assert.ErrorIs(t, err, ErrUnauthorized)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load(), "hook must fire once per session")
	assert.Empty(t, session.Token(), "token cleared after 401")

	// A fresh login re-arms the hook for the next session.
	require.NoError(t, session.SetToken("fresh"))
	_, err := client.ListSystems(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(2), fired.Load())
}

func TestNoRetryOn401(t *testing.T) {
	var calls atomic.Int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.ListSystems(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))

	_, err := client.ListSystems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestErrorDetailCollapsing(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"run not found"}`, "run not found"},
		{"validation list", `{"detail":[{"msg":"field required"},{"msg":"value too small"}]}`, "field required; value too small"},
		{"arbitrary object", `{"detail":{"code":42}}`, `{"code":42}`},
		{"plain text body", `gateway exploded`, "gateway exploded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			}))

			_, err := client.GetRun(context.Background(), "r1")
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 422, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestAnalyticsNotComputed(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"snapshot not found"}`))
	}))

	_, err := client.GetAnalytics(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrNotComputed)
	assert.NotErrorIs(t, err, ErrNotFound, "ErrNotComputed replaces the generic 404")
}

func TestGetRunNotFound(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"no such run"}`))
	}))

	_, err := client.GetRun(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnavailableWrapsNetworkError(t *testing.T) {
	session := NewSession(filepath.Join(t.TempDir(), "token"))
	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	cfg.Timeout = 200 * time.Millisecond
	client := NewClient(cfg, session, nil)

	_, err := client.ListSystems(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRiskOfRuinQueryParams(t *testing.T) {
	var query string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"ruin_probability":0.02}`))
	}))

	summary, err := client.RunRiskOfRuin(context.Background(), "r1", model.RiskOfRuinParams{
		PositionFraction: 0.02,
		RuinThreshold:    0.5,
		Simulations:      2000,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.02, summary.RuinProbability)
	assert.Contains(t, query, "position_fraction=0.02")
	assert.Contains(t, query, "ruin_threshold=0.5")
	assert.Contains(t, query, "simulations=2000")
}

func TestRiskOfRuinOmitsZeroParams(t *testing.T) {
	var query string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))

	_, err := client.RunRiskOfRuin(context.Background(), "r1", model.RiskOfRuinParams{})
	require.NoError(t, err)
	assert.Empty(t, query)
}

func TestFinishRunSendsStatusOnly(t *testing.T) {
	var body []byte
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/runs/r1", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"id":"r1","status":"finished"}`))
	}))

	run, err := client.FinishRun(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFinished, run.Status)
	assert.JSONEq(t, `{"status":"finished"}`, string(body))
}

func TestCreateTradeRejectsBadStopLocally(t *testing.T) {
	var calls atomic.Int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	stop := 110.0
	_, err := client.CreateTrade(context.Background(), model.TradePayload{
		RunID:      "r1",
		EntryPrice: 100,
		ExitPrice:  105,
		Size:       1,
		Direction:  model.DirectionLong,
		StopLoss:   &stop,
	})
	require.ErrorIs(t, err, model.ErrStopLossSide)
	assert.Equal(t, int32(0), calls.Load(), "bad payload must not reach the wire")
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edge-lab", "token")

	first := NewSession(path)
	require.NoError(t, first.SetToken("persist-me"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second := NewSession(path)
	assert.Equal(t, "persist-me", second.Token())

	second.Clear()
	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
