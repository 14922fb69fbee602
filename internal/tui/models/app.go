package models

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
	"github.com/x88a9/edge-lab/internal/tui/components"
)

// view identifies the active screen.
type view int

const (
	viewLogin view = iota
	viewSystems
	viewVariants
	viewRuns
	viewRunDetail
)

// cmdTimeout bounds every API call issued from the TUI.
const cmdTimeout = 30 * time.Second

// App is the root model. It owns navigation, the header/footer chrome,
// the toast line and the per-screen sub-models. Sub-models never talk
// to each other; everything routes through App.
type App struct {
	client *api.Client
	runs   *loader.RunLoader
	lists  *listSet

	active   view
	login    LoginModel
	systems  SystemsModel
	variants VariantsModel
	runList  RunsModel
	detail   RunDetailModel

	// form is the modal overlay; nil when no form is open.
	form *Form

	user   string
	toast  components.Toast
	width  int
	height int

	pollInterval   time.Duration
	pollMaxRetries int
}

// Options carries the dashboard's configured behavior into the shell.
type Options struct {
	Ruin            model.RiskOfRuinParams
	LogScaleDefault bool
	PollInterval    time.Duration
	PollMaxRetries  int
}

// NewApp builds the shell. When the session already has a token the app
// starts on the systems screen; a 401 will bounce it back to login.
func NewApp(client *api.Client, runLoader *loader.RunLoader, opts Options) App {
	app := App{
		client:         client,
		runs:           runLoader,
		lists:          newListSet(client),
		login:          NewLoginModel(),
		systems:        NewSystemsModel(),
		variants:       NewVariantsModel(),
		runList:        NewRunsModel(),
		detail:         NewRunDetailModel(opts.Ruin, opts.LogScaleDefault),
		active:         viewLogin,
		width:          100,
		height:         32,
		pollInterval:   opts.PollInterval,
		pollMaxRetries: opts.PollMaxRetries,
	}
	if client.Session().Token() != "" {
		app.active = viewSystems
	}
	return app
}

// Init triggers the first load for the starting screen.
func (a App) Init() tea.Cmd {
	if a.active == viewSystems {
		return a.loadSystemsCmd()
	}
	return a.login.Init()
}

// Update routes messages to the shell first, then the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case SessionExpiredMsg:
		a.active = viewLogin
		a.form = nil
		a.user = ""
		a.toast = components.Toast{Message: "session expired, log in again", Kind: components.ToastError}
		return a, nil

	case RefreshMsg:
		if a.active == viewLogin || a.form != nil {
			return a, nil
		}
		return a, a.refreshActive()

	case loginDoneMsg:
		a.user = msg.email
		a.active = viewSystems
		a.toast = components.Toast{Message: "logged in", Kind: components.ToastOK}
		return a, tea.Batch(a.loadSystemsCmd(), a.expireToast())

	case errMsg:
		if a.active == viewLogin {
			err := msg.err
			if errors.Is(err, api.ErrUnauthorized) {
				err = errors.New("invalid credentials")
			}
			a.login = a.login.fail(err)
			return a, nil
		}
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return a.Update(SessionExpiredMsg{})
		}
		a.toast = components.Toast{Message: msg.err.Error(), Kind: components.ToastError}
		if a.form != nil {
			a.form.Fail(msg.err)
		}
		return a, a.expireToast()

	case clearToastMsg:
		a.toast = components.Toast{}
		return a, nil

	case mutationDoneMsg:
		a.form = nil
		a.toast = components.Toast{Message: msg.toast, Kind: components.ToastOK}
		return a, tea.Batch(a.refreshActive(), a.expireToast())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			cmd := a.form.Update(msg)
			if a.form.Canceled() {
				a.form = nil
			}
			return a, cmd
		}
		return a.route(msg)
	}

	return a.route(msg)
}

// route forwards a message to the active screen's model.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.active {
	case viewLogin:
		return a.routeLogin(msg)
	case viewSystems:
		return a.routeSystems(msg)
	case viewVariants:
		return a.routeVariants(msg)
	case viewRuns:
		return a.routeRuns(msg)
	case viewRunDetail:
		return a.routeDetail(msg)
	}
	return a, nil
}

// refreshActive refetches the data behind the active screen after a
// mutation.
func (a App) refreshActive() tea.Cmd {
	switch a.active {
	case viewSystems:
		return a.loadSystemsCmd()
	case viewVariants:
		return a.loadVariantsCmd(a.variants.systemID)
	case viewRuns:
		return a.loadRunsCmd(a.runList.variantID)
	case viewRunDetail:
		return a.loadRunViewCmd(a.detail.runID)
	}
	return nil
}

// View composes header, active screen, toast and footer.
func (a App) View() string {
	header := components.Header{
		Breadcrumb: a.breadcrumb(),
		User:       a.user,
		Width:      a.width,
	}.Render()

	var body, footer string
	switch a.active {
	case viewLogin:
		body = a.login.View(a.width)
		footer = components.FormFooter(a.width).Render()
	case viewSystems:
		body = a.systems.View(a.width)
		footer = components.ListFooter(a.width).Render()
	case viewVariants:
		body = a.variants.View(a.width)
		footer = components.ListFooter(a.width).Render()
	case viewRuns:
		body = a.runList.View(a.width)
		footer = components.ListFooter(a.width).Render()
	case viewRunDetail:
		body = a.detail.View(a.width, a.height)
		footer = components.DetailFooter(a.width).Render()
	}

	if a.form != nil {
		body = a.form.View(a.width)
		footer = components.FormFooter(a.width).Render()
	}

	sections := []string{header, body}
	if t := a.toast.Render(); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) breadcrumb() []string {
	crumbs := []string{"Systems"}
	switch a.active {
	case viewLogin:
		return []string{"Login"}
	case viewSystems:
		return crumbs
	case viewVariants:
		return append(crumbs, a.variants.systemLabel)
	case viewRuns:
		return append(crumbs, a.runList.systemLabel, a.runList.variantLabel)
	case viewRunDetail:
		return append(crumbs, a.detail.systemLabel, a.detail.variantLabel, a.detail.runLabel)
	}
	return crumbs
}

func (a App) expireToast() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// apiCtx returns the context used for one TUI-issued API call.
func apiCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cmdTimeout)
}

// errOr wraps a command result.
func errOr(err error, msg tea.Msg) tea.Msg {
	if err != nil {
		return errMsg{err}
	}
	return msg
}
