package regexfa

import "log/slog"

const (
	// DefaultSoftStateLimit is the NFA size above which full powerset
	// enumeration logs a warning. 2^20 subsets is the practical ceiling.
	DefaultSoftStateLimit = 20
	// DefaultHardStateLimit is the NFA size above which Determinize refuses
	// to enumerate the powerset. 0 leaves only the soft limit warning.
	DefaultHardStateLimit = 0
)

type options struct {
	logger         *slog.Logger
	epsilonClosure bool
	reachableOnly  bool
	softLimit      int
	hardLimit      int
}

// Option configures a conversion.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		logger:    slog.New(slog.DiscardHandler),
		softLimit: DefaultSoftStateLimit,
		hardLimit: DefaultHardStateLimit,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger sets the logger for progress and warnings. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEpsilonClosure makes Determinize fold epsilon closures into every
// move and drop Epsilon from the DFA alphabet. Without it epsilon is an
// ordinary symbol.
func WithEpsilonClosure() Option {
	return func(o *options) {
		o.epsilonClosure = true
	}
}

// WithReachableOnly makes Determinize discover only the subsets reachable
// from the start set instead of enumerating the whole powerset.
func WithReachableOnly() Option {
	return func(o *options) {
		o.reachableOnly = true
	}
}

// WithStateLimits sets the powerset limits in NFA states. A hard limit of 0
// disables the check.
func WithStateLimits(soft, hard int) Option {
	return func(o *options) {
		o.softLimit = soft
		o.hardLimit = hard
	}
}
