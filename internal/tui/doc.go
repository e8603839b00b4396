// Package tui implements the terminal user interface for kvforge.
//
// Built on the Bubble Tea framework, the package provides three full-screen
// models sharing one style palette:
//   - EditorModel: the key-value editor; translates terminal key messages
//     into editor.KeyPress events and feeds them through editor.Dispatch,
//     so every state transition lives in the editor package and the model
//     only renders and quits
//   - CounterModel: the bounded counter demo
//   - HelloModel: the static banner demo
//
// # Framework components
//
//   - bubbles/key: declarative key bindings, one keymap per screen
//   - bubbles/help: context-sensitive footer help rendered from the keymaps
//   - lipgloss: styling and layout (see styles.go)
//
// # Usage
//
//	model := tui.NewEditorModel()
//	p := tea.NewProgram(model, tea.WithAltScreen())
//	final, err := p.Run()
//	if err != nil {
//	    return err
//	}
//	if final.(tui.EditorModel).Outcome() == editor.ResultExitAndEmit {
//	    // hand final.(tui.EditorModel).State.Pairs to the serializer
//	}
//
// The alternate screen and raw mode are owned by tea.Program; Run returns
// only after the terminal is restored, so callers may print errors normally
// afterwards.
package tui
