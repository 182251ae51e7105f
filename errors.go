package ka3305p

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by any operation invoked after Close.
	ErrNotConnected = errors.New("ka3305p: not connected")

	// ErrNoResponse is returned when the instrument produced no reply bytes
	// within the settle window for an operation that requires one.
	ErrNoResponse = errors.New("ka3305p: no response from instrument")
)

// ArgumentError reports an argument outside the instrument's fixed set.
type ArgumentError struct {
	Name  string
	Value int
	Valid string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("ka3305p: %s %d is not in %s", e.Name, e.Value, e.Valid)
}

func errChannel(ch Channel) error {
	return &ArgumentError{Name: "channel", Value: int(ch), Valid: "{1, 2}"}
}

func errPanel(p Panel) error {
	return &ArgumentError{Name: "panel", Value: int(p), Valid: "{1, 2, 3, 4, 5}"}
}

func errTrackingMode(m TrackingMode) error {
	return &ArgumentError{Name: "tracking mode", Value: int(m), Valid: "{0, 1, 2}"}
}
