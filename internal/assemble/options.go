package assemble

import "aicc-assembler/internal/logger"

// DefaultSuggestDistance is the edit distance within which an unknown
// attribute key gets "did you mean" suggestions.
const DefaultSuggestDistance = 2

// Options configures an Assembler.
type Options struct {
	// StrictRoot makes a structure table without a ROOT block an error
	// instead of falling back to the first row.
	StrictRoot bool
	// SuggestDistance bounds alias suggestions; 0 disables them.
	SuggestDistance int
	Logger          *logger.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithStrictRoot toggles strict root resolution.
func WithStrictRoot(strict bool) Option {
	return func(o *Options) { o.StrictRoot = strict }
}

// WithSuggestDistance sets the suggestion edit distance.
func WithSuggestDistance(d int) Option {
	return func(o *Options) { o.SuggestDistance = d }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func defaultOptions() Options {
	return Options{
		SuggestDistance: DefaultSuggestDistance,
		Logger:          logger.Nop(),
	}
}
