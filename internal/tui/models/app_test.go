package models

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
)

func testApp(t *testing.T, handler http.Handler) (App, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := api.NewSession(filepath.Join(t.TempDir(), "token"))
	session.SetToken("test-token")
	client := api.NewClient(api.Config{
		BaseURL:      srv.URL,
		Timeout:      5 * time.Second,
		MaxRetries:   0,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
		RateLimit:    1000,
	}, session, nil)

	runs := loader.NewRunLoader(client, time.Minute, nil)
	return NewApp(client, runs, Options{PollInterval: time.Millisecond, PollMaxRetries: 1}), srv
}

func TestLoadSystemsThroughListFetcher(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/systems", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"s1","name":"trend","asset":"EURUSD"}]`))
	})
	app, _ := testApp(t, mux)

	msg := app.loadSystemsCmd()()
	loaded, ok := msg.(systemsLoadedMsg)
	require.True(t, ok, "got %T", msg)
	require.Len(t, loaded, 1)
	assert.Equal(t, "trend", loaded[0].Name)

	// The list fetcher holds the same resolved state the message carried.
	assert.Equal(t, []model.System(loaded), app.lists.systemsList().Data())

	updated, _ := app.Update(msg)
	app = updated.(App)
	assert.Equal(t, "trend", app.systems.systems[0].Name)
	assert.False(t, app.systems.loading)
}

func TestListFetcherRebuiltOnScopeChange(t *testing.T) {
	mux := http.NewServeMux()
	app, _ := testApp(t, mux)

	first := app.lists.runsList(app.client, "v1")
	same := app.lists.runsList(app.client, "v1")
	other := app.lists.runsList(app.client, "v2")

	assert.Same(t, first, same, "same scope reuses the fetcher")
	assert.NotSame(t, first, other, "new scope rebuilds the fetcher")
}

func TestTradeFormPatchesDraftLocally(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/trades/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"t1","run_id":"r1"}`))
	})
	app, _ := testApp(t, mux)
	app.active = viewRunDetail
	app.detail.runID = "r1"
	app.detail.loading = false

	form := app.newTradeForm("r1", nil)
	cmd, err := form.submit([]string{"1.0", "1.1", "", "2", "long", "H1", ""})
	require.NoError(t, err)
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "create submit should batch the draft with the API call")

	var draft *tradeDraftMsg
	var done bool
	for _, sub := range batch {
		switch msg := sub().(type) {
		case tradeDraftMsg:
			draft = &msg
		case mutationDoneMsg:
			done = true
		}
	}
	require.NotNil(t, draft, "missing local draft message")
	assert.True(t, done, "missing create completion message")

	assert.InDelta(t, 0.1, draft.trade.RawReturn, 1e-9)
	assert.InDelta(t, 0.0953, draft.trade.LogReturn, 1e-3)

	updated, _ := app.Update(*draft)
	app = updated.(App)
	require.Len(t, app.detail.view.Trades, 1)
	assert.InDelta(t, 0.1, app.detail.view.Trades[0].REstimate(), 1e-3)
}

func TestTradeDraftIgnoredForOtherRun(t *testing.T) {
	app, _ := testApp(t, http.NewServeMux())
	app.active = viewRunDetail
	app.detail.runID = "r1"

	updated, _ := app.Update(tradeDraftMsg{trade: model.Trade{RunID: "r2"}})
	app = updated.(App)
	assert.Empty(t, app.detail.view.Trades)
}
