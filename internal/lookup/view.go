package lookup

import "context"

// State is the display state derived from the widget fields.
type State int

const (
	StateIdle State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// MarshalText lets State appear as a string in JSON views.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is a successful lookup: the first definition and, if the first entry
// has one, the first pronunciation recording.
type Result struct {
	DefinitionText string  `json:"definitionText"`
	AudioURL       *string `json:"audioUrl"`
}

// View is an immutable snapshot of the widget. At most one of Result and
// ErrorMessage is non-nil.
type View struct {
	Query        string  `json:"query"`
	State        State   `json:"state"`
	Result       *Result `json:"result"`
	ErrorMessage *string `json:"errorMessage"`
}

// Renderer receives a fresh View after every state change.
type Renderer interface {
	Render(ctx context.Context, v View)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, v View)

func (f RendererFunc) Render(ctx context.Context, v View) { f(ctx, v) }

// NopRenderer discards views. Hosts that pull state through Widget.View use it.
var NopRenderer Renderer = RendererFunc(func(context.Context, View) {})
