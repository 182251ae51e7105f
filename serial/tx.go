package serial

import (
	"sync/atomic"

	"github.com/Pietroro/ka3305p"
	"github.com/kellegous/poop"
	"go.bug.st/serial"
)

type tx struct {
	port     serial.Port
	isClosed atomic.Bool
}

var _ ka3305p.Transport = (*tx)(nil)

func (t *tx) Write(p []byte) (int, error) {
	n, err := t.port.Write(p)
	if err != nil {
		return n, poop.Chain(err)
	}
	return n, nil
}

// ReadPending reads whatever the port has buffered. The port carries a
// short read timeout (set at Connect), so a Read against an empty buffer
// returns n == 0 instead of blocking for the next byte.
func (t *tx) ReadPending(p []byte) (int, error) {
	n, err := t.port.Read(p)
	if err != nil {
		return 0, poop.Chain(err)
	}
	return n, nil
}

func (t *tx) Close() error {
	if t.isClosed.Swap(true) {
		return nil
	}
	return poop.Chain(t.port.Close())
}
