package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// LoginModel is the authentication gate. Both fields must be non-empty
// before submit; the in-flight flag keeps enter from double-firing.
type LoginModel struct {
	email    textinput.Model
	password textinput.Model
	focused  int
	busy     bool
	errText  string
}

// NewLoginModel creates the login form with the email field focused.
func NewLoginModel() LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{email: email, password: password}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// handleKey updates field focus and returns a login command on submit.
// The submit callback is supplied by the shell so this model stays free
// of API wiring.
func (m LoginModel) handleKey(msg tea.KeyMsg, submit func(email, password string) tea.Cmd) (LoginModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focused = 1 - m.focused
		if m.focused == 0 {
			m.email.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.email.Blur()
		}
		return m, nil

	case "enter":
		email := strings.TrimSpace(m.email.Value())
		password := m.password.Value()
		if email == "" || password == "" {
			m.errText = "email and password are required"
			return m, nil
		}
		m.busy = true
		m.errText = ""
		return m, submit(email, password)
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// fail surfaces a login error and re-enables the form.
func (m LoginModel) fail(err error) LoginModel {
	m.busy = false
	m.errText = err.Error()
	return m
}

// View renders the centered login panel.
func (m LoginModel) View(width int) string {
	var lines []string
	lines = append(lines, styles.Title.Render("Sign in"))
	lines = append(lines, "")
	lines = append(lines, styles.Label.Render("EMAIL"))
	lines = append(lines, m.email.View())
	lines = append(lines, "")
	lines = append(lines, styles.Label.Render("PASSWORD"))
	lines = append(lines, m.password.View())

	if m.busy {
		lines = append(lines, "", styles.Dim("signing in..."))
	}
	if m.errText != "" {
		lines = append(lines, "", styles.ErrorText.Render(m.errText))
	}

	panel := styles.Panel.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, lipgloss.Height(panel)+4, lipgloss.Center, lipgloss.Center, panel)
}
