package ka3305p

import (
	"fmt"
	"time"
)

// The instrument's command parser is format sensitive: voltages are sent
// with two decimal places, currents and protection limits with three, and
// no command carries a terminator.
const (
	cmdIdentify = "*IDN?"
	cmdStatus   = "STATUS?"
)

// Settle delays between writing a command and draining the reply. The link
// has no framing, so elapsed time is the only reply delimiter.
const (
	defaultSettle  = 50 * time.Millisecond
	applySettle    = 100 * time.Millisecond
	identifySettle = 300 * time.Millisecond
)

func vsetCommand(ch Channel, volts float64) string {
	return fmt.Sprintf("VSET%d:%.2f", ch, volts)
}

func vsetQuery(ch Channel) string {
	return fmt.Sprintf("VSET%d?", ch)
}

func voutQuery(ch Channel) string {
	return fmt.Sprintf("VOUT%d?", ch)
}

func isetCommand(ch Channel, amps float64) string {
	return fmt.Sprintf("ISET%d:%.3f", ch, amps)
}

func isetQuery(ch Channel) string {
	return fmt.Sprintf("ISET%d?", ch)
}

func ioutQuery(ch Channel) string {
	return fmt.Sprintf("IOUT%d?", ch)
}

func ocpLimitCommand(ch Channel, amps float64) string {
	return fmt.Sprintf("OCPSTE%d:%.3f", ch, amps)
}

func ovpLimitCommand(ch Channel, volts float64) string {
	return fmt.Sprintf("OVPSTE%d:%.3f", ch, volts)
}

func recallCommand(p Panel) string {
	return fmt.Sprintf("RCL%d", p)
}

func saveCommand(p Panel) string {
	return fmt.Sprintf("SAV%d", p)
}

func trackCommand(m TrackingMode) string {
	return fmt.Sprintf("TRACK%d", m)
}

func toggleCommand(prefix string, on bool) string {
	if on {
		return prefix + "1"
	}
	return prefix + "0"
}

func channelOutputCommand(ch Channel, on bool) string {
	state := 0
	if on {
		state = 1
	}
	return fmt.Sprintf("OUT%d:%d", ch, state)
}
