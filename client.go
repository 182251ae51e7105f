package ka3305p

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/kellegous/poop"
)

// Transport is the byte-oriented half-duplex link to the instrument.
// ReadPending reads up to len(p) bytes that are already buffered on the
// link and returns n == 0 when nothing is waiting.
type Transport interface {
	io.Writer
	ReadPending(p []byte) (int, error)
	Close() error
}

// Option configures a Client.
type Option func(*Client)

// OnSend registers a hook observing every command written to the transport.
func OnSend(fn func(cmd string)) Option {
	return func(c *Client) {
		c.onSend = fn
	}
}

// OnRecv registers a hook observing every non-empty reply drained from the
// transport.
func OnRecv(fn func(data []byte)) Option {
	return func(c *Client) {
		c.onRecv = fn
	}
}

// Client drives a Korad KA3305P programmable power supply over a Transport.
// The protocol is strictly request/response with at most one command in
// flight, so a Client must not be used from multiple goroutines without
// external serialization.
type Client struct {
	tx     Transport
	closed atomic.Bool

	onSend func(cmd string)
	onRecv func(data []byte)

	last    Status
	hasLast bool
}

func NewClient(tx Transport, opts ...Option) *Client {
	c := &Client{tx: tx}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connected reports whether the client still owns a live transport.
func (c *Client) Connected() bool {
	return !c.closed.Load()
}

// Close releases the transport. Any operation invoked afterwards returns
// ErrNotConnected. Close is idempotent.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return poop.Chain(c.tx.Close())
}

// exchange is the single I/O chokepoint: it writes one command, waits out
// the settle delay, then drains whatever the instrument buffered. A nil
// result means the instrument sent nothing, which is normal for
// fire-and-forget commands.
func (c *Client) exchange(ctx context.Context, cmd string, settle time.Duration) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrNotConnected
	}

	if c.onSend != nil {
		c.onSend(cmd)
	}

	if _, err := io.WriteString(c.tx, cmd); err != nil {
		return nil, poop.Chain(err)
	}

	if err := waitFor(ctx, settle); err != nil {
		return nil, err
	}

	var out []byte
	var b [1]byte
	for {
		n, err := c.tx.ReadPending(b[:])
		if err != nil {
			return nil, poop.Chain(err)
		}
		if n == 0 {
			break
		}
		out = append(out, b[0])
	}

	if len(out) == 0 {
		return nil, nil
	}

	if c.onRecv != nil {
		c.onRecv(out)
	}
	return out, nil
}

func waitFor(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) queryDecimal(ctx context.Context, cmd string) (float64, error) {
	data, err := c.exchange(ctx, cmd, defaultSettle)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, ErrNoResponse
	}
	v, err := parseDecimal(data)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Identify returns the instrument's identification string, for example
// "KORAD KD3005P V2.0".
func (c *Client) Identify(ctx context.Context) (string, error) {
	data, err := c.exchange(ctx, cmdIdentify, identifySettle)
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", ErrNoResponse
	}
	return trimReply(decodeLatin1(data)), nil
}

// SetVoltage sets the output voltage setpoint on a channel, in volts.
func (c *Client) SetVoltage(ctx context.Context, ch Channel, volts float64) error {
	if !ch.Valid() {
		return errChannel(ch)
	}
	_, err := c.exchange(ctx, vsetCommand(ch, volts), applySettle)
	return err
}

// VoltageSetpoint returns the programmed voltage on a channel, in volts.
func (c *Client) VoltageSetpoint(ctx context.Context, ch Channel) (float64, error) {
	if !ch.Valid() {
		return 0, errChannel(ch)
	}
	return c.queryDecimal(ctx, vsetQuery(ch))
}

// ReadVoltage returns the measured output voltage on a channel, in volts.
func (c *Client) ReadVoltage(ctx context.Context, ch Channel) (float64, error) {
	if !ch.Valid() {
		return 0, errChannel(ch)
	}
	return c.queryDecimal(ctx, voutQuery(ch))
}

// SetCurrent sets the output current setpoint on a channel, in amps.
func (c *Client) SetCurrent(ctx context.Context, ch Channel, amps float64) error {
	if !ch.Valid() {
		return errChannel(ch)
	}
	_, err := c.exchange(ctx, isetCommand(ch, amps), applySettle)
	return err
}

// CurrentSetpoint returns the programmed current on a channel, in amps.
func (c *Client) CurrentSetpoint(ctx context.Context, ch Channel) (float64, error) {
	if !ch.Valid() {
		return 0, errChannel(ch)
	}
	return c.queryDecimal(ctx, isetQuery(ch))
}

// ReadCurrent returns the measured output current on a channel, in amps.
func (c *Client) ReadCurrent(ctx context.Context, ch Channel) (float64, error) {
	if !ch.Valid() {
		return 0, errChannel(ch)
	}
	return c.queryDecimal(ctx, ioutQuery(ch))
}

// SetOutput turns the output on or off.
func (c *Client) SetOutput(ctx context.Context, on bool) error {
	_, err := c.exchange(ctx, toggleCommand("OUT", on), defaultSettle)
	return err
}

// SetOCPEnabled turns over-current protection on or off.
func (c *Client) SetOCPEnabled(ctx context.Context, on bool) error {
	_, err := c.exchange(ctx, toggleCommand("OCP", on), defaultSettle)
	return err
}

// SetOCPLimit sets the over-current protection trip point on a channel,
// in amps.
func (c *Client) SetOCPLimit(ctx context.Context, ch Channel, amps float64) error {
	if !ch.Valid() {
		return errChannel(ch)
	}
	_, err := c.exchange(ctx, ocpLimitCommand(ch, amps), applySettle)
	return err
}

// SetOVPEnabled turns over-voltage protection on or off.
func (c *Client) SetOVPEnabled(ctx context.Context, on bool) error {
	_, err := c.exchange(ctx, toggleCommand("OVP", on), defaultSettle)
	return err
}

// SetOVPLimit sets the over-voltage protection trip point on a channel,
// in volts.
func (c *Client) SetOVPLimit(ctx context.Context, ch Channel, volts float64) error {
	if !ch.Valid() {
		return errChannel(ch)
	}
	_, err := c.exchange(ctx, ovpLimitCommand(ch, volts), applySettle)
	return err
}

// RecallPanel restores the front-panel configuration stored in a slot.
func (c *Client) RecallPanel(ctx context.Context, p Panel) error {
	if !p.Valid() {
		return errPanel(p)
	}
	_, err := c.exchange(ctx, recallCommand(p), defaultSettle)
	return err
}

// SavePanel stores the current front-panel configuration into a slot.
func (c *Client) SavePanel(ctx context.Context, p Panel) error {
	if !p.Valid() {
		return errPanel(p)
	}
	_, err := c.exchange(ctx, saveCommand(p), defaultSettle)
	return err
}

// SetTrackingMode puts the two channels in independent, series, or parallel
// operation.
func (c *Client) SetTrackingMode(ctx context.Context, m TrackingMode) error {
	if !m.Valid() {
		return errTrackingMode(m)
	}
	_, err := c.exchange(ctx, trackCommand(m), defaultSettle)
	return err
}

// GetStatus queries the supply's composite status byte and returns the
// decoded snapshot. The snapshot is also cached, see LastStatus.
func (c *Client) GetStatus(ctx context.Context) (Status, error) {
	data, err := c.exchange(ctx, cmdStatus, defaultSettle)
	if err != nil {
		return Status{}, err
	}
	if data == nil {
		return Status{}, ErrNoResponse
	}
	s := decodeStatus(data[0])
	c.last, c.hasLast = s, true
	return s, nil
}

// LastStatus returns the snapshot from the most recent successful GetStatus.
// The bool is false if no status query has succeeded yet.
func (c *Client) LastStatus() (Status, bool) {
	return c.last, c.hasLast
}
