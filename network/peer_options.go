package network

import "time"

// Options configure how a peer listens and dials.
type Options struct {
	Timeout       time.Duration
	WebSocket     bool
	WebSocketPath string
}

type PeerOption func(Options) Options

func defaultOptions(opts []PeerOption) Options {
	o := Options{WebSocketPath: "/table"}
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}

// WithTimeout bounds how long Dial keeps retrying. Zero retries forever.
func WithTimeout(timeout time.Duration) PeerOption {
	return func(o Options) Options {
		o.Timeout = timeout
		return o
	}
}

// WithWebSocket switches the transport from framed TCP to websocket
// messages served at path.
func WithWebSocket(path string) PeerOption {
	return func(o Options) Options {
		o.WebSocket = true
		if path != "" {
			o.WebSocketPath = path
		}
		return o
	}
}
