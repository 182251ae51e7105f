package ka3305p

import "context"

// KD3305 drives the dual-output KD3305P, which speaks a superset of the
// KA3305P protocol: output switching is per channel and the beeper can be
// toggled remotely.
type KD3305 struct {
	*Client
}

func NewKD3305(tx Transport, opts ...Option) *KD3305 {
	return &KD3305{Client: NewClient(tx, opts...)}
}

// SetOutput turns both outputs on or off.
func (c *KD3305) SetOutput(ctx context.Context, on bool) error {
	cmd := channelOutputCommand(Channel1, on) + "\n" + channelOutputCommand(Channel2, on)
	_, err := c.exchange(ctx, cmd, defaultSettle)
	return err
}

// SetChannelOutput turns a single channel's output on or off.
func (c *KD3305) SetChannelOutput(ctx context.Context, ch Channel, on bool) error {
	if !ch.Valid() {
		return errChannel(ch)
	}
	_, err := c.exchange(ctx, channelOutputCommand(ch, on), defaultSettle)
	return err
}

// SetBeep turns the front-panel beeper on or off.
func (c *KD3305) SetBeep(ctx context.Context, on bool) error {
	_, err := c.exchange(ctx, toggleCommand("BEEP", on), defaultSettle)
	return err
}
