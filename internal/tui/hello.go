package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// helloKeyMap defines key bindings for the hello screen
type helloKeyMap struct {
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k helloKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k helloKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit},
	}
}

// HelloModel renders a static styled banner until the user quits
type HelloModel struct {
	Message string

	Width  int
	Height int

	Help help.Model
	Keys helloKeyMap
}

// NewHelloModel creates the static message screen
func NewHelloModel(message string) HelloModel {
	keys := helloKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	return HelloModel{
		Message: message,
		Help:    help.New(),
		Keys:    keys,
	}
}

// Init initializes the hello screen
func (m HelloModel) Init() tea.Cmd {
	return nil
}

// Update handles hello screen key presses
func (m HelloModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the banner
func (m HelloModel) View() string {
	var b strings.Builder

	b.WriteString(RenderHeader("hello"))
	b.WriteString("\n\n")
	b.WriteString(BannerStyle.Render(m.Message))
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))

	return b.String()
}
