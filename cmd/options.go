package cmd

import (
	"time"

	"github.com/spiffcs/punchcard/config"
	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/clock"
)

// Options holds the shared command-line options for the punchcard CLI.
type Options struct {
	Verbosity  int
	Color      string
	Format     string
	TimeLayout string
	From       string // Base timestamp for offsets (default: now)
	File       string // Read expressions from file, "-" for stdin
	Workers    int

	Offset *biduration.BiDuration // nil = not given on the command line
	Prompt *bool                  // nil = auto-detect, true = force prompt, false = disable prompt
	Since  string

	// Profiling options
	CPUProfile string // Write CPU profile to file
	MemProfile string // Write memory profile to file
	Trace      string // Write execution trace to file

	now    func() time.Time
	config *config.Config
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		now: clock.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (text, table, json, yaml, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithFrom sets the base timestamp offsets are applied to.
func WithFrom(from string) Option {
	return func(o *Options) {
		o.From = from
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithPrompt controls the offset prompt (nil = auto-detect, true = force, false = disable).
func WithPrompt(prompt *bool) Option {
	return func(o *Options) {
		o.Prompt = prompt
	}
}

// WithNow overrides the clock used for the current time.
func WithNow(now func() time.Time) Option {
	return func(o *Options) {
		o.now = now
	}
}

// WithConfig uses cfg instead of loading config files.
func WithConfig(cfg *config.Config) Option {
	return func(o *Options) {
		o.config = cfg
	}
}

// outputFormat returns the flag value, falling back to config.
func (o *Options) outputFormat() string {
	if o.Format != "" {
		return o.Format
	}
	return o.config.Output
}

func (o *Options) timeLayout() string {
	if o.TimeLayout != "" {
		return o.TimeLayout
	}
	return o.config.TimeLayout
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return o.config.Workers
}

// base returns the timestamp offsets are resolved against.
func (o *Options) base() (time.Time, error) {
	return clock.ParseWhen(o.From, o.now())
}
