// Package editor implements the key-value editing state machine at the heart
// of kvforge.
//
// The package is deliberately free of any terminal or rendering concern: it
// defines the session State (committed pairs, the two in-progress text
// buffers, and the screen/field position) and a single pure transition
// function, Dispatch, that applies one keyboard event to that state.
//
// # Screens
//
// The session moves between three screens:
//   - Main: 'e' opens the editing popup, 'q' opens the exit confirmation
//   - Editing: typed characters fill the key or value buffer, Tab swaps
//     between them, Enter advances key→value and then commits the pair,
//     Backspace pops from the active buffer, Esc abandons the pair
//   - Exiting: 'y' ends the session and requests output emission, 'n' or
//     'q' ends it discarding everything
//
// # Totality
//
// Dispatch has no error path. Key releases, unknown keys, backspacing an
// empty buffer, and typing with no active field are all defined no-ops.
// The host loop drives the machine until Dispatch returns one of the two
// exit results:
//
//	st := editor.New()
//	for {
//	    render(st)
//	    switch editor.Dispatch(st, nextKey()) {
//	    case editor.ResultExitAndEmit:
//	        return emit(st.Pairs)
//	    case editor.ResultExitDiscard:
//	        return nil
//	    }
//	}
package editor
