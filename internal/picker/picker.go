// Package picker renders the interactive version selector used by `solc-select use`.
package picker

import (
	"errors"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/solc-select/internal/messages"
	"github.com/conn-castle/solc-select/internal/terminal"
)

var (
	// ErrNotInteractive is returned when no terminal is attached.
	ErrNotInteractive = errors.New(messages.PickerRequiresTerminal)
	// ErrCancelled is returned when the user leaves the picker without choosing.
	ErrCancelled = errors.New(messages.PickerCancelled)
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// visibleRows caps the list height; the full release list is long.
const visibleRows = 12

// Picker selects one version from a list using charmbracelet/huh.
type Picker struct {
	isTerminal func() bool
	out        io.Writer
}

// New returns a Picker that renders to stderr.
func New() *Picker {
	return &Picker{isTerminal: terminal.IsInteractive, out: os.Stderr}
}

// keyMap makes both Esc and Ctrl+C leave the picker.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// formFilter converts InterruptMsg to QuitMsg so the renderer clears the form on abort.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// Select asks the user to choose one of options. current, when present in options,
// is preselected and labelled.
func (p *Picker) Select(title string, options []string, current string) (string, error) {
	checker := p.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if !checker() {
		return "", ErrNotInteractive
	}

	choice := ""
	if len(options) > 0 {
		choice = options[0]
	}
	if slices.Contains(options, current) {
		choice = current
	}
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		label := o
		if o == current {
			label = o + " (current)"
		}
		opts[i] = huh.NewOption(label, o)
	}

	out := p.out
	if out == nil {
		out = os.Stderr
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Height(min(len(options)+2, visibleRows)).
			Value(&choice),
	))
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(out),
		tea.WithFilter(formFilter),
	)

	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return choice, nil
}
