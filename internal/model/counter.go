package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeCounter is returned when a state is seeded below zero.
var ErrNegativeCounter = errors.New("counter cannot be negative")

// Mode is the visible state of the widget: whether the boundary warning is up.
type Mode int

const (
	Normal Mode = iota
	Warning
)

func (m Mode) String() string {
	if m == Warning {
		return "warning"
	}
	return "normal"
}

// State is the counter widget's whole domain model.
// The zero value is the initial mounted state.
type State struct {
	Counter int  `json:"counter"`
	Error   bool `json:"error"`
}

// NewState builds a seeded state, rejecting counters below zero.
func NewState(counter int, showError bool) (State, error) {
	if counter < 0 {
		return State{}, fmt.Errorf("seed %d: %w", counter, ErrNegativeCounter)
	}
	return State{Counter: counter, Error: showError}, nil
}

// Increment adds one and clears the warning. Saturates at math.MaxInt.
func (s State) Increment() State {
	if s.Counter < math.MaxInt {
		s.Counter++
	}
	s.Error = false
	return s
}

// Decrement subtracts one, or raises the warning when already at zero.
// A successful decrement leaves Error as it was.
func (s State) Decrement() State {
	if s.Counter == 0 {
		s.Error = true
		return s
	}
	s.Counter--
	return s
}

func (s State) Mode() Mode {
	if s.Error {
		return Warning
	}
	return Normal
}
