package gen

import "runtime"

const (
	// DefaultMaxVariants caps the number of constants a single type may
	// declare.
	DefaultMaxVariants = 4096

	// ModulePath is the import path of the boundint package referenced by
	// generated code.
	ModulePath = "github.com/hupe1980/boundint"
)

type options struct {
	logger      *Logger
	naming      Naming
	maxVariants int
	parallelism int
}

// Option configures a Generator.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithNaming sets the variant naming used when a definition and its config
// leave it unset.
func WithNaming(n Naming) Option {
	return func(o *options) {
		o.naming = n
	}
}

// WithMaxVariants caps the number of values a definition may cover.
// Values <= 0 restore DefaultMaxVariants.
func WithMaxVariants(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxVariants
		}
		o.maxVariants = n
	}
}

// WithParallelism limits how many definitions Generate renders at once.
// Values <= 0 use GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		naming:      NamingSign,
		maxVariants: DefaultMaxVariants,
		parallelism: runtime.GOMAXPROCS(0),
	}
}
