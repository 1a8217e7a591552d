package game

import (
	"log/slog"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

const DefaultStartingChips = 1000

type Options struct {
	Logger    *slog.Logger
	Evaluator poker.HandEvaluator
	Chips     uint
	MaxRounds int // 0 plays until a stack is empty
}

type Option func(Options) Options

func defaultOptions() Options {
	return Options{
		Logger:    slog.Default(),
		Evaluator: poker.RankEvaluator{},
		Chips:     DefaultStartingChips,
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o Options) Options {
		if logger != nil {
			o.Logger = logger
		}
		return o
	}
}

func WithEvaluator(eval poker.HandEvaluator) Option {
	return func(o Options) Options {
		o.Evaluator = eval
		return o
	}
}

// WithStartingChips sets the stack of both players. Only the host uses it;
// the guest learns it from the handshake.
func WithStartingChips(chips uint) Option {
	return func(o Options) Options {
		o.Chips = chips
		return o
	}
}

func WithMaxRounds(n int) Option {
	return func(o Options) Options {
		o.MaxRounds = n
		return o
	}
}

func applyOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}
