package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// counterKeyMap defines key bindings for the counter screen
type counterKeyMap struct {
	Decrement key.Binding
	Increment key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k counterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k counterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrement, k.Increment, k.Quit},
	}
}

// CounterModel is the bounded counter demo. Increments and decrements
// saturate at the configured bounds; presses past a bound are no-ops.
type CounterModel struct {
	Count int
	Min   int
	Max   int

	Width  int
	Height int

	Help help.Model
	Keys counterKeyMap
}

// NewCounterModel creates a counter starting at min
func NewCounterModel(min, max int) CounterModel {
	if max < min {
		min, max = max, min
	}

	keys := counterKeyMap{
		Decrement: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrement"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increment"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	return CounterModel{
		Count: min,
		Min:   min,
		Max:   max,
		Help:  help.New(),
		Keys:  keys,
	}
}

// Init initializes the counter screen
func (m CounterModel) Init() tea.Cmd {
	return nil
}

// Update handles counter key presses
func (m CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.Decrement):
			if m.Count > m.Min {
				m.Count--
			}
			return m, nil

		case key.Matches(msg, m.Keys.Increment):
			if m.Count < m.Max {
				m.Count++
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the counter screen
func (m CounterModel) View() string {
	var b strings.Builder

	b.WriteString(RenderHeader("counter"))
	b.WriteString("\n\n")

	value := CounterValueStyle.Render(fmt.Sprintf("%d", m.Count))
	b.WriteString(PairStyle.Render(fmt.Sprintf("Value: %s   (range %d to %d)", value, m.Min, m.Max)))
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))

	return b.String()
}
