package widget

import (
	"strconv"

	"github.com/idilsaglam/counter/internal/model"
)

const (
	DisplayPrefix   = "The counter is currently "
	DecrementLabel  = "Decrement counter"
	IncrementLabel  = "Increment counter"
	UnderflowNotice = "You cannot go under 0"
)

// Widget owns one counter state and the two click handlers that mutate it.
type Widget struct {
	state    model.State
	onChange func(prev, next model.State)
}

type Option func(*Widget)

// WithOnChange registers the redraw request fired after every handler.
func WithOnChange(fn func(prev, next model.State)) Option {
	return func(w *Widget) { w.onChange = fn }
}

// WithState mounts the widget with a seeded state instead of (0, false).
func WithState(s model.State) Option {
	return func(w *Widget) { w.state = s }
}

func New(opts ...Option) *Widget {
	w := &Widget{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Widget) State() model.State { return w.state }

func (w *Widget) Increment() { w.apply(w.state.Increment()) }

func (w *Widget) Decrement() { w.apply(w.state.Decrement()) }

func (w *Widget) apply(next model.State) {
	prev := w.state
	w.state = next
	if w.onChange != nil {
		w.onChange(prev, next)
	}
}

// Render builds the element tree for the current state. The error
// paragraph is only present while the warning is up.
func (w *Widget) Render() *Node {
	root := newNode("div", HookApp, "",
		newNode("h1", HookCounterDisplay, DisplayPrefix+strconv.Itoa(w.state.Counter)),
		&Node{Tag: "button", Hook: HookDecrementButton, Text: DecrementLabel, OnClick: w.Decrement},
		&Node{Tag: "button", Hook: HookIncrementButton, Text: IncrementLabel, OnClick: w.Increment},
	)
	if w.state.Error {
		root.Children = append(root.Children, newNode("p", HookDecrementError, UnderflowNotice))
	}
	return root
}
