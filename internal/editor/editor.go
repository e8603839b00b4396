package editor

// Screen represents the current active screen in the editor
type Screen int

const (
	// ScreenMain is the pair listing with the edit/quit bindings active
	ScreenMain Screen = iota
	// ScreenEditing is the key/value entry popup
	ScreenEditing
	// ScreenExiting is the emit-on-exit confirmation prompt
	ScreenExiting
)

// String returns a human-readable screen name for logging
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenEditing:
		return "editing"
	case ScreenExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Field identifies which transient buffer receives typed input while on
// ScreenEditing. FieldNone means no buffer is active; it is the only valid
// value on any screen other than ScreenEditing.
type Field int

const (
	FieldNone Field = iota
	FieldKey
	FieldValue
)

// String returns a human-readable field name for logging
func (f Field) String() string {
	switch f {
	case FieldKey:
		return "key"
	case FieldValue:
		return "value"
	default:
		return "none"
	}
}

// Code identifies the key that produced a KeyPress
type Code int

const (
	// KeyRune is a printable character; the character is in KeyPress.Rune
	KeyRune Code = iota
	KeyEnter
	KeyBackspace
	KeyEsc
	KeyTab
)

// Kind distinguishes press from release events. Only presses are acted on;
// releases pass through Dispatch without touching state.
type Kind int

const (
	Press Kind = iota
	Release
)

// KeyPress is one keyboard event as delivered by the input source
type KeyPress struct {
	Code Code
	Rune rune
	Kind Kind
}

// Result is the outcome of dispatching one event. The host loop keeps
// polling on ResultContinue and terminates on either exit result; only
// ResultExitAndEmit hands the accumulated pairs to the serializer.
type Result int

const (
	ResultContinue Result = iota
	ResultExitDiscard
	ResultExitAndEmit
)

// State is the single source of truth for the editing session: the committed
// pairs, the two in-progress buffers, and the screen/field position. All
// transitions live in Dispatch; State itself is plain storage.
type State struct {
	Pairs      map[string]string
	KeyInput   string
	ValueInput string
	Screen     Screen
	Field      Field
}

// New returns the all-empty starting state: no pairs, empty buffers,
// main screen, no active field.
func New() *State {
	return &State{
		Pairs: make(map[string]string),
	}
}

// Dispatch applies one keyboard event to the state and reports whether the
// session continues or ends. Every (state, event) combination is defined;
// unmatched keys are no-ops, never errors.
func Dispatch(s *State, ev KeyPress) Result {
	// Releases and any future non-press kinds are filtered before screen
	// logic so the rule holds uniformly across screens.
	if ev.Kind != Press {
		return ResultContinue
	}

	switch s.Screen {
	case ScreenMain:
		dispatchMain(s, ev)
	case ScreenEditing:
		dispatchEditing(s, ev)
	case ScreenExiting:
		return dispatchExiting(s, ev)
	}
	return ResultContinue
}

func dispatchMain(s *State, ev KeyPress) {
	if ev.Code != KeyRune {
		return
	}
	switch ev.Rune {
	case 'e':
		s.Screen = ScreenEditing
		s.Field = FieldKey
	case 'q':
		s.Screen = ScreenExiting
	}
}

func dispatchExiting(s *State, ev KeyPress) Result {
	if ev.Code != KeyRune {
		return ResultContinue
	}
	switch ev.Rune {
	case 'y':
		return ResultExitAndEmit
	case 'n', 'q':
		return ResultExitDiscard
	}
	return ResultContinue
}

func dispatchEditing(s *State, ev KeyPress) {
	switch ev.Code {
	case KeyEnter:
		switch s.Field {
		case FieldKey:
			s.Field = FieldValue
		case FieldValue:
			s.commit()
		}

	case KeyBackspace:
		// Pops from whichever buffer is active. Empty buffers and an
		// absent field are no-ops.
		switch s.Field {
		case FieldKey:
			s.KeyInput = trimLastRune(s.KeyInput)
		case FieldValue:
			s.ValueInput = trimLastRune(s.ValueInput)
		}

	case KeyEsc:
		// Abandon the in-progress pair. Buffers are deliberately left
		// populated; re-entering editing resumes where the user left off.
		s.Screen = ScreenMain
		s.Field = FieldNone

	case KeyTab:
		s.toggleField()

	case KeyRune:
		switch s.Field {
		case FieldKey:
			s.KeyInput += string(ev.Rune)
		case FieldValue:
			s.ValueInput += string(ev.Rune)
		}
	}
}

// commit moves the two buffers into Pairs (last write wins on a duplicate
// key) and resets the editing position back to the main screen.
func (s *State) commit() {
	s.Pairs[s.KeyInput] = s.ValueInput
	s.KeyInput = ""
	s.ValueInput = ""
	s.Field = FieldNone
	s.Screen = ScreenMain
}

// toggleField swaps the active buffer. An editing screen should never have
// FieldNone, but if it does the toggle recovers to FieldKey instead of
// misbehaving.
func (s *State) toggleField() {
	switch s.Field {
	case FieldKey:
		s.Field = FieldValue
	case FieldValue:
		s.Field = FieldKey
	default:
		s.Field = FieldKey
	}
}

func trimLastRune(in string) string {
	if in == "" {
		return ""
	}
	runes := []rune(in)
	return string(runes[:len(runes)-1])
}
