package cluster

import (
	"errors"
)

var (
	// ErrTooFewPoints indicates that bottleneck clustering needs at least two points.
	ErrTooFewPoints = errors.New("cluster: at least two points required")

	// ErrTooFewComponents indicates that fewer than three components remain,
	// so no top-three product exists.
	ErrTooFewComponents = errors.New("cluster: fewer than three components")

	// ErrNotConnected indicates that the ordered edges were exhausted before
	// every point joined a single component.
	ErrNotConnected = errors.New("cluster: edges exhausted before all points connected")

	// ErrInvalidPipeline indicates a Pipeline without an order strategy or aggregator.
	ErrInvalidPipeline = errors.New("cluster: pipeline requires order and aggregator")

	// ErrUnknownMode indicates an Options.Mode that is neither ModeTopThree nor ModeBottleneck.
	ErrUnknownMode = errors.New("cluster: unknown mode")
)

// ModeTopThree selects TopThreeProduct.
const ModeTopThree = "top-three"

// ModeBottleneck selects BottleneckProduct.
const ModeBottleneck = "bottleneck"

// DefaultPairs is the number of closest pairs connected by ModeTopThree
// when no other value is configured.
const DefaultPairs = 1000

// Options configures Compute and the mode entry points.
//
// Fields:
//
//	Mode  string — ModeTopThree or ModeBottleneck.
//	Pairs int    — closest pairs to connect; used by ModeTopThree only.
//	Logf  func   — diagnostic logger; nil means the package logger.
type Options struct {
	Mode  string
	Pairs int
	Logf  func(format string, args ...any)
}

// Option configures Options.
type Option func(*Options)

// WithMode sets the clustering mode.
func WithMode(mode string) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithPairs sets how many closest pairs ModeTopThree connects.
func WithPairs(k int) Option {
	return func(o *Options) {
		o.Pairs = k
	}
}

// WithLogger routes pipeline diagnostics to logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(o *Options) {
		o.Logf = logf
	}
}

// DefaultOptions returns Options for ModeTopThree with DefaultPairs and the
// package logger.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeTopThree,
		Pairs: DefaultPairs,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
