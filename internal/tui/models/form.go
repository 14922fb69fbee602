package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// FormField is one labeled input in a modal form.
type FormField struct {
	Label    string
	Input    textinput.Model
	Required bool
}

// NewField creates a form field with sane input defaults.
func NewField(label, placeholder, initial string, required bool) FormField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	input.SetValue(initial)
	return FormField{Label: label, Input: input, Required: required}
}

// Form is a modal create/update form. Drafts live entirely in the
// inputs until submit; the submit closure parses and fires the API
// call. While a submit is in flight the form ignores input so a slow
// server cannot double-post.
type Form struct {
	title    string
	fields   []FormField
	focused  int
	busy     bool
	errText  string
	canceled bool

	// submit receives the trimmed field values in declaration order and
	// either returns the command to run or a validation error to show
	// inline.
	submit func(values []string) (tea.Cmd, error)
}

// NewForm creates a form with the first field focused.
func NewForm(title string, submit func(values []string) (tea.Cmd, error), fields ...FormField) *Form {
	if len(fields) > 0 {
		fields[0].Input.Focus()
	}
	return &Form{title: title, fields: fields, submit: submit}
}

// Canceled reports whether the user dismissed the form.
func (f *Form) Canceled() bool {
	return f.canceled
}

// Fail surfaces a submit error and re-enables the form.
func (f *Form) Fail(err error) {
	f.busy = false
	f.errText = err.Error()
}

// Update handles one key event.
func (f *Form) Update(msg tea.KeyMsg) tea.Cmd {
	if f.busy {
		return nil
	}

	switch msg.String() {
	case "esc":
		f.canceled = true
		return nil

	case "tab", "down":
		f.moveFocus(1)
		return nil

	case "shift+tab", "up":
		f.moveFocus(-1)
		return nil

	case "enter":
		values := make([]string, len(f.fields))
		for i, field := range f.fields {
			values[i] = strings.TrimSpace(field.Input.Value())
			if field.Required && values[i] == "" {
				f.errText = field.Label + " is required"
				return nil
			}
		}
		cmd, err := f.submit(values)
		if err != nil {
			f.errText = err.Error()
			return nil
		}
		f.busy = true
		f.errText = ""
		return cmd
	}

	var cmd tea.Cmd
	f.fields[f.focused].Input, cmd = f.fields[f.focused].Input.Update(msg)
	return cmd
}

func (f *Form) moveFocus(delta int) {
	f.fields[f.focused].Input.Blur()
	f.focused = (f.focused + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focused].Input.Focus()
}

// View renders the centered form panel.
func (f *Form) View(width int) string {
	var lines []string
	lines = append(lines, styles.Title.Render(f.title))
	for _, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		lines = append(lines, "")
		lines = append(lines, styles.Label.Render(strings.ToUpper(label)))
		lines = append(lines, field.Input.View())
	}

	if f.busy {
		lines = append(lines, "", styles.Dim("saving..."))
	}
	if f.errText != "" {
		lines = append(lines, "", styles.ErrorText.Render(f.errText))
	}

	panel := styles.PanelFocused.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, lipgloss.Height(panel)+2, lipgloss.Center, lipgloss.Center, panel)
}
