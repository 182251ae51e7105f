package ka3305p

import "strconv"

// Channel identifies one of the supply's two outputs.
type Channel int

const (
	Channel1 Channel = 1
	Channel2 Channel = 2
)

func (c Channel) Valid() bool {
	return c == Channel1 || c == Channel2
}

func (c Channel) String() string {
	return strconv.Itoa(int(c))
}

// Panel identifies one of the five front-panel memory slots stored inside
// the instrument.
type Panel int

func (p Panel) Valid() bool {
	return p >= 1 && p <= 5
}

// TrackingMode selects how the two output channels relate to each other.
type TrackingMode int

const (
	TrackingIndependent TrackingMode = 0
	TrackingSeries      TrackingMode = 1
	TrackingParallel    TrackingMode = 2
)

func (m TrackingMode) Valid() bool {
	switch m {
	case TrackingIndependent, TrackingSeries, TrackingParallel:
		return true
	}
	return false
}

func (m TrackingMode) String() string {
	switch m {
	case TrackingIndependent:
		return "independent"
	case TrackingSeries:
		return "series"
	case TrackingParallel:
		return "parallel"
	}
	return "unknown"
}

// Mode is the regulation mode the supply is operating in.
type Mode byte

const (
	ModeCC Mode = iota // constant current
	ModeCV             // constant voltage
)

func (m Mode) String() string {
	if m == ModeCV {
		return "CV"
	}
	return "CC"
}

type OutputState byte

const (
	OutputOff OutputState = iota
	OutputOn
)

func (s OutputState) String() string {
	if s == OutputOn {
		return "On"
	}
	return "Off"
}

// Status is a snapshot of the supply's composite status byte.
type Status struct {
	Mode   Mode
	Output OutputState
}

func (s Status) String() string {
	return s.Mode.String() + "/" + s.Output.String()
}
