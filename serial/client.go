package serial

import (
	"context"
	"time"

	"github.com/Pietroro/ka3305p"
	"github.com/kellegous/poop"
	"go.bug.st/serial"
)

// The instrument's link is fixed at 9600 8N1.
var mode = serial.Mode{
	BaudRate: 9600,
	DataBits: 8,
	Parity:   serial.NoParity,
	StopBits: serial.OneStopBit,
}

// readPollTimeout bounds each drain read so that reading an empty buffer
// returns immediately-ish instead of blocking for the next byte.
const readPollTimeout = 20 * time.Millisecond

// Connect opens the serial port the supply is attached to (a device path
// such as /dev/ttyUSB0 or a COM name) and verifies the link with an initial
// status query. The returned client owns the port until Close.
func Connect(ctx context.Context, address string, opts ...ConnectOption) (*ka3305p.Client, error) {
	transport, options, err := open(address, opts)
	if err != nil {
		return nil, poop.Chain(err)
	}

	client := ka3305p.NewClient(transport, options.clientOptions()...)
	if _, err := client.GetStatus(ctx); err != nil {
		client.Close()
		return nil, poop.Chain(err)
	}
	return client, nil
}

// ConnectKD3305 is Connect for the dual-output KD3305P.
func ConnectKD3305(ctx context.Context, address string, opts ...ConnectOption) (*ka3305p.KD3305, error) {
	transport, options, err := open(address, opts)
	if err != nil {
		return nil, poop.Chain(err)
	}

	client := ka3305p.NewKD3305(transport, options.clientOptions()...)
	if _, err := client.GetStatus(ctx); err != nil {
		client.Close()
		return nil, poop.Chain(err)
	}
	return client, nil
}

func open(address string, opts []ConnectOption) (*tx, *ConnectOptions, error) {
	var options ConnectOptions
	for _, opt := range opts {
		opt(&options)
	}

	port, err := serial.Open(address, &mode)
	if err != nil {
		return nil, nil, poop.Chain(err)
	}

	if err := port.SetReadTimeout(readPollTimeout); err != nil {
		port.Close()
		return nil, nil, poop.Chain(err)
	}

	return &tx{port: port}, &options, nil
}
