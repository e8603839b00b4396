package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/veldt/kvforge/internal/editor"
	"github.com/veldt/kvforge/internal/logging"
)

// mainKeyMap defines key bindings for the main screen
type mainKeyMap struct {
	Edit key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k mainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k mainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Quit},
	}
}

// editingKeyMap defines key bindings for the editing popup
type editingKeyMap struct {
	Confirm key.Binding
	Switch  key.Binding
	Delete  key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Switch, k.Delete, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k editingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Switch},
		{k.Delete, k.Cancel},
	}
}

// exitingKeyMap defines key bindings for the exit confirmation screen
type exitingKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k exitingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp returns keybindings for the expanded help view
func (k exitingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Yes, k.No},
	}
}

// EditorModel is the Bubble Tea model for the key-value editor. It owns the
// editor session state and translates terminal key messages into state
// machine events; all transition logic lives in the editor package.
type EditorModel struct {
	// Session state (single owner, mutated only through editor.Dispatch)
	State *editor.State

	// How the session ended; meaningful once the program has quit
	outcome editor.Result

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	MainKeys    mainKeyMap
	EditingKeys editingKeyMap
	ExitingKeys exitingKeyMap
}

// NewEditorModel creates an editor model with a fresh, empty session
func NewEditorModel() EditorModel {
	mainKeys := mainKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "new pair"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	editingKeys := editingKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/save"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch field"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	exitingKeys := exitingKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "write output"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "q"),
			key.WithHelp("n/q", "discard"),
		),
	}

	return EditorModel{
		State:       editor.New(),
		outcome:     editor.ResultContinue,
		Help:        help.New(),
		MainKeys:    mainKeys,
		EditingKeys: editingKeys,
		ExitingKeys: exitingKeys,
	}
}

// Outcome reports how the session ended. It returns ResultContinue until the
// program has quit through one of the exit confirmations.
func (m EditorModel) Outcome() editor.Result {
	return m.outcome
}

// Init initializes the editor screen
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles terminal messages, feeding key presses through the
// editor state machine
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global interrupt: ends the session without emitting, bypassing
		// the confirmation flow
		if msg.Type == tea.KeyCtrlC {
			m.outcome = editor.ResultExitDiscard
			return m, tea.Quit
		}

		for _, ev := range keyPresses(msg) {
			result := editor.Dispatch(m.State, ev)
			if result != editor.ResultContinue {
				logging.Debug("editor session ended",
					zap.Int("pairs", len(m.State.Pairs)),
					zap.Bool("emit", result == editor.ResultExitAndEmit),
				)
				m.outcome = result
				return m, tea.Quit
			}
		}
		return m, nil
	}

	return m, nil
}

// keyPresses translates a terminal key message into state machine events.
// A pasted run of characters becomes one event per rune; keys the editor
// has no binding for produce nothing.
func keyPresses(msg tea.KeyMsg) []editor.KeyPress {
	switch msg.Type {
	case tea.KeyEnter:
		return []editor.KeyPress{{Code: editor.KeyEnter}}
	case tea.KeyBackspace:
		return []editor.KeyPress{{Code: editor.KeyBackspace}}
	case tea.KeyEsc:
		return []editor.KeyPress{{Code: editor.KeyEsc}}
	case tea.KeyTab:
		return []editor.KeyPress{{Code: editor.KeyTab}}
	case tea.KeySpace:
		return []editor.KeyPress{{Code: editor.KeyRune, Rune: ' '}}
	case tea.KeyRunes:
		events := make([]editor.KeyPress, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, editor.KeyPress{Code: editor.KeyRune, Rune: r})
		}
		return events
	}
	return nil
}

// View renders the current screen
func (m EditorModel) View() string {
	// The first frame can render before the WindowSizeMsg arrives
	width := m.Width
	if width == 0 {
		width = GetTerminalWidth()
	}

	var b strings.Builder

	b.WriteString(RenderHeader(m.State.Screen.String()))
	b.WriteString("\n\n")

	b.WriteString(m.renderPairs())

	switch m.State.Screen {
	case editor.ScreenEditing:
		b.WriteString("\n")
		b.WriteString(m.renderEditingPopup(width))
		b.WriteString("\n")
		b.WriteString(m.Help.View(m.EditingKeys))

	case editor.ScreenExiting:
		b.WriteString("\n")
		b.WriteString(ConfirmStyle.Render("Write the collected pairs to the output? (y/n)"))
		b.WriteString("\n")
		b.WriteString(m.Help.View(m.ExitingKeys))

	default:
		b.WriteString("\n")
		b.WriteString(m.Help.View(m.MainKeys))
	}

	return b.String()
}

// renderPairs renders the committed pairs, sorted for a stable display order
func (m EditorModel) renderPairs() string {
	if len(m.State.Pairs) == 0 {
		return SubtitleStyle.Render("  No pairs yet. Press 'e' to add one.") + "\n"
	}

	keys := make([]string, 0, len(m.State.Pairs))
	for k := range m.State.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		line := fmt.Sprintf("%s : %s", PairKeyStyle.Render(k), m.State.Pairs[k])
		b.WriteString(PairStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderEditingPopup renders the key/value entry box with the active field
// highlighted
func (m EditorModel) renderEditingPopup(width int) string {
	keyLabel := BlurredInputStyle.Render("Key")
	valueLabel := BlurredInputStyle.Render("Value")
	cursorKey, cursorValue := "", ""

	switch m.State.Field {
	case editor.FieldKey:
		keyLabel = FocusedInputStyle.Render("Key")
		cursorKey = FocusedInputStyle.Render("█")
	case editor.FieldValue:
		valueLabel = FocusedInputStyle.Render("Value")
		cursorValue = FocusedInputStyle.Render("█")
	}

	content := fmt.Sprintf("%s   %s%s\n%s %s%s",
		keyLabel, m.State.KeyInput, cursorKey,
		valueLabel, m.State.ValueInput, cursorValue,
	)

	popupWidth := width - 4
	if popupWidth > MaxContentWidth {
		popupWidth = MaxContentWidth
	}
	return PopupStyle.Width(popupWidth).Render(content)
}
