package mcflow

import (
	"errors"

	"github.com/katalvlaran/mcflow/flow"
	"github.com/katalvlaran/mcflow/naming"
)

var (
	// ErrSourceNotFound indicates the source sentinel is on no arc.
	ErrSourceNotFound = errors.New("mcflow: source node not found")

	// ErrSinkNotFound indicates the sink sentinel is on no arc.
	ErrSinkNotFound = errors.New("mcflow: sink node not found")
)

// Options configures Solve.
//
//	Source, Sink – sentinel names (default naming.DefaultSource/DefaultSink).
//	FlowOptions  – forwarded to flow.Solve.
type Options struct {
	Source      string
	Sink        string
	FlowOptions []flow.Option
}

// Option represents a functional option for Solve.
type Option func(*Options)

// WithSentinels selects the source and sink names. Panics if they are equal.
func WithSentinels(source, sink string) Option {
	if source == sink {
		panic("mcflow: WithSentinels requires distinct source and sink")
	}
	return func(o *Options) {
		o.Source = source
		o.Sink = sink
	}
}

// WithFlowOptions forwards solver options (desired flow, worklist, context,
// logger, build options).
func WithFlowOptions(opts ...flow.Option) Option {
	return func(o *Options) {
		o.FlowOptions = append(o.FlowOptions, opts...)
	}
}

// DefaultOptions returns the "SOURCE"/"SINK" sentinels and no solver options.
func DefaultOptions() Options {
	return Options{
		Source: naming.DefaultSource,
		Sink:   naming.DefaultSink,
	}
}
