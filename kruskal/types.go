package kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstrace/core"
)

// ErrInvalidMaxFindHops indicates MaxFindHops < 1.
var ErrInvalidMaxFindHops = errors.New("kruskal: max find hops must be at least 1")

// ErrInvalidMaxDFSSteps indicates MaxDFSSteps < 1.
var ErrInvalidMaxDFSSteps = errors.New("kruskal: max dfs steps must be at least 1")

// ErrUnknownEngine indicates an Engine other than EngineDSU or EngineDFS.
var ErrUnknownEngine = errors.New("kruskal: unknown engine")

// Engine selects the cycle-detection strategy of a trace.
type Engine string

const (
	// EngineDSU detects cycles with union-find.
	EngineDSU Engine = "dsu"

	// EngineDFS detects cycles with a reachability search over the forest.
	EngineDFS Engine = "dfs"
)

// ParseEngine maps a user-supplied name onto an Engine.
func ParseEngine(name string) (Engine, error) {
	switch e := Engine(name); e {
	case EngineDSU, EngineDFS:
		return e, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownEngine)
	}
}

// Default budgets.
const (
	DefaultMaxFindHops = 16
	DefaultMaxDFSSteps = 200
)

// Options configures one trace. Use DefaultOptions() or NewOptions(opts...)
// to obtain a resolved value; builders validate it once before any work.
//
// Fields:
//
//	Detailed    – emit micro-steps (find hops, search events) when true.
//	Compression – path compression in union-find (ignored by EngineDFS).
//	MaxFindHops – narrated hops per find before a summary step (EngineDSU).
//	MaxDFSSteps – narrated events per search before a summary step (EngineDFS).
type Options struct {
	Detailed    bool `json:"detailed" yaml:"detailed" mapstructure:"detailed"`
	Compression bool `json:"compression" yaml:"compression" mapstructure:"compression"`
	MaxFindHops int  `json:"maxFindHops" yaml:"max_find_hops" mapstructure:"max_find_hops"`
	MaxDFSSteps int  `json:"maxDfsSteps" yaml:"max_dfs_steps" mapstructure:"max_dfs_steps"`
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns coarse mode, compression on, 16 find hops and
// 200 search steps.
func DefaultOptions() Options {
	return Options{
		Detailed:    false,
		Compression: true,
		MaxFindHops: DefaultMaxFindHops,
		MaxDFSSteps: DefaultMaxDFSSteps,
	}
}

// WithDetailed toggles micro-step narration.
func WithDetailed(on bool) Option {
	return func(o *Options) {
		o.Detailed = on
	}
}

// WithCompression toggles path compression.
func WithCompression(on bool) Option {
	return func(o *Options) {
		o.Compression = on
	}
}

// WithMaxFindHops sets the per-find narration budget.
func WithMaxFindHops(n int) Option {
	return func(o *Options) {
		o.MaxFindHops = n
	}
}

// WithMaxDFSSteps sets the per-search narration budget.
func WithMaxDFSSteps(n int) Option {
	return func(o *Options) {
		o.MaxDFSSteps = n
	}
}

// WithOptions replaces every field with base, for callers that already hold
// a resolved Options (config files, request bodies).
func WithOptions(base Options) Option {
	return func(o *Options) {
		*o = base
	}
}

// Validate reports the first out-of-range budget.
func (o Options) Validate() error {
	if o.MaxFindHops < 1 {
		return fmt.Errorf("max find hops %d: %w", o.MaxFindHops, ErrInvalidMaxFindHops)
	}
	if o.MaxDFSSteps < 1 {
		return fmt.Errorf("max dfs steps %d: %w", o.MaxDFSSteps, ErrInvalidMaxDFSSteps)
	}

	return nil
}

// Mode names the granularity, "detailed" or "coarse".
func (o Options) Mode() string {
	if o.Detailed {
		return "detailed"
	}

	return "coarse"
}

// NewOptions applies opts over DefaultOptions and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.Validate()
}

// Trace runs the builder selected by engine.
//
//	– EngineDSU: BuildDSUTrace(g, opts...).
//	– EngineDFS: BuildDFSTrace(g, opts...).
//	– Otherwise: ErrUnknownEngine.
func Trace(g core.Graph, engine Engine, opts ...Option) ([]core.Step, error) {
	switch engine {
	case EngineDSU:
		return BuildDSUTrace(g, opts...)
	case EngineDFS:
		return BuildDFSTrace(g, opts...)
	default:
		return nil, fmt.Errorf("%q: %w", engine, ErrUnknownEngine)
	}
}

// prepare resolves options and validates g; shared by both builders.
func prepare(g core.Graph, opts []Option) (Options, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return Options{}, err
	}
	if err = g.Validate(); err != nil {
		return Options{}, fmt.Errorf("kruskal: %w", err)
	}

	return o, nil
}
