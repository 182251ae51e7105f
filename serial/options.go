package serial

import "github.com/Pietroro/ka3305p"

type ConnectOptions struct {
	onSend func(cmd string)
	onRecv func(data []byte)
}

type ConnectOption func(*ConnectOptions)

// OnSend observes every command written to the port.
func OnSend(fn func(cmd string)) ConnectOption {
	return func(opts *ConnectOptions) {
		opts.onSend = fn
	}
}

// OnRecv observes every reply drained from the port.
func OnRecv(fn func(data []byte)) ConnectOption {
	return func(opts *ConnectOptions) {
		opts.onRecv = fn
	}
}

func (o *ConnectOptions) clientOptions() []ka3305p.Option {
	var opts []ka3305p.Option
	if o.onSend != nil {
		opts = append(opts, ka3305p.OnSend(o.onSend))
	}
	if o.onRecv != nil {
		opts = append(opts, ka3305p.OnRecv(o.onRecv))
	}
	return opts
}
