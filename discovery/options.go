package discovery

import (
	"log/slog"
	"time"
)

const (
	DefaultPort     = 53552
	DefaultInterval = time.Second
)

type options struct {
	port     uint16
	interval time.Duration
	logger   *slog.Logger
}

type Option func(options) options

func defaultOptions() options {
	return options{
		port:     DefaultPort,
		interval: DefaultInterval,
		logger:   slog.Default(),
	}
}

func WithPort(port uint16) Option {
	return func(o options) options {
		o.port = port
		return o
	}
}

// WithInterval sets the time between two announcements.
func WithInterval(interval time.Duration) Option {
	return func(o options) options {
		o.interval = interval
		return o
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o options) options {
		if logger != nil {
			o.logger = logger
		}
		return o
	}
}
