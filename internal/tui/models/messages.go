// Package models holds the Bubble Tea models that make up the dashboard:
// the app shell, the login gate, the browse screens and the run detail
// view with its analytics panels.
package models

import (
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
)

// SessionExpiredMsg is injected by the hosting command when the API
// rejects the session. The shell drops to the login view.
type SessionExpiredMsg struct{}

// RefreshMsg is injected by the hosting command's scheduler to refetch
// the data behind the active screen.
type RefreshMsg struct{}

// errMsg carries a failed command's error into Update.
type errMsg struct {
	err error
}

// loginDoneMsg signals a successful login.
type loginDoneMsg struct {
	email string
}

type systemsLoadedMsg []model.System

type variantsLoadedMsg struct {
	systemID string
	variants []model.Variant
}

type summaryLoadedMsg model.VariantSummary

type runsLoadedMsg struct {
	variantID string
	runs      []model.Run
}

type runViewLoadedMsg loader.RunView

type analyticsLoadedMsg loader.AnalyticsBundle

// snapshotMsg delivers a resolved analytics snapshot after compute+poll.
type snapshotMsg model.AnalyticsSnapshot

// tradeDraftMsg patches a just-submitted trade into the run detail view
// with locally computed returns; the authoritative refetch replaces it.
type tradeDraftMsg struct {
	trade model.Trade
}

// mutationDoneMsg signals a completed write: the owning view refetches.
type mutationDoneMsg struct {
	toast string
}

// clearToastMsg expires the current toast.
type clearToastMsg struct{}
