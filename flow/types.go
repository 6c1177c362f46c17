package flow

import (
	"context"
	"errors"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mcflow/network"
)

// Unbounded requests the maximum possible flow.
const Unbounded int64 = math.MaxInt64

// Infinity is the distance of a node the shortest-path search cannot reach.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks a node without a predecessor on the shortest-path tree.
const NoPredecessor = -1

var (
	// ErrNilNetwork is returned when a nil *network.Network is passed in.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrNegativeCycle is returned when the residual graph contains a
	// negative-cost cycle reachable from the source. Successive shortest paths
	// never introduces one; it only arises from malformed input (for example
	// a preexisting flow that is not of minimum cost).
	ErrNegativeCycle = errors.New("flow: negative-cost cycle reachable from source")

	// ErrNegativeDesiredFlow is the panic message of WithDesiredFlow(<0).
	ErrNegativeDesiredFlow = errors.New("flow: desired flow must be non-negative")
)

// Worklist selects the removal discipline of the shortest-path worklist.
type Worklist int

const (
	// WorklistFIFO processes improved nodes in first-in first-out order.
	WorklistFIFO Worklist = iota

	// WorklistPriority always processes the improved node with the smallest
	// tentative distance. It never changes the result, only the number of
	// relaxations.
	WorklistPriority
)

// String implements fmt.Stringer.
func (w Worklist) String() string {
	switch w {
	case WorklistFIFO:
		return "fifo"
	case WorklistPriority:
		return "priority"
	default:
		return "unknown"
	}
}

// Options configures the solver.
//
//	DesiredFlow  – total flow to reach; Unbounded (default) pushes the maximum.
//	Worklist     – shortest-path worklist discipline (default WorklistFIFO).
//	Ctx          – checked once per augmentation (default context.Background()).
//	Logger       – receives one debug record per augmentation; nil disables logging.
//	BuildOptions – forwarded to network.Build by Solve.
type Options struct {
	DesiredFlow  int64
	Worklist     Worklist
	Ctx          context.Context
	Logger       *log.Logger
	BuildOptions []network.Option
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithDesiredFlow caps the total flow. Panics on a negative value.
func WithDesiredFlow(f int64) Option {
	if f < 0 {
		panic(ErrNegativeDesiredFlow.Error())
	}
	return func(o *Options) {
		o.DesiredFlow = f
	}
}

// WithWorklist selects the shortest-path worklist discipline.
func WithWorklist(w Worklist) Option {
	return func(o *Options) {
		o.Worklist = w
	}
}

// WithContext attaches a context; a canceled context stops the solve between
// augmentations and its error is returned.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("flow: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger enables per-augmentation debug logging.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithBuildOptions forwards options to network.Build.
func WithBuildOptions(opts ...network.Option) Option {
	return func(o *Options) {
		o.BuildOptions = append(o.BuildOptions, opts...)
	}
}

// DefaultOptions returns the solver defaults: unbounded desired flow, FIFO
// worklist, background context, no logging, validated build.
func DefaultOptions() Options {
	return Options{
		DesiredFlow: Unbounded,
		Worklist:    WorklistFIFO,
		Ctx:         context.Background(),
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Result summarizes a call to SuccessiveShortestPaths.
type Result struct {
	// Flow is the total flow leaving the source, including any flow the
	// network already carried when the solve started.
	Flow int64
	// Cost is the cost of the flow pushed by this call.
	Cost int64
	// Augmentations is the number of augmenting paths used.
	Augmentations int
}
