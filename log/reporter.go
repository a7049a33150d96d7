package log

import (
	"github.com/go-logr/logr"
	"github.com/miruken-go/either"
)

// Reporter logs the outcome held by Either values.
type Reporter struct {
	root      logr.Logger
	verbosity int
}

// SetVerbosity sets the level used when logging right values.
func (r *Reporter) SetVerbosity(verbosity int) {
	r.verbosity = verbosity
}

// SetName appends a name segment to the root logger.
func (r *Reporter) SetName(name string) {
	r.root = r.root.WithName(name)
}

// Logger returns the logger used for right values.
func (r *Reporter) Logger() logr.Logger {
	return r.root.V(r.verbosity)
}

// Verbosity sets the level used when logging right values.
// Left values are always logged at level 0.
func Verbosity(verbosity int) func(reporter *Reporter) {
	return func(reporter *Reporter) {
		reporter.SetVerbosity(verbosity)
	}
}

// Name appends a name segment to the root logger.
func Name(name string) func(reporter *Reporter) {
	return func(reporter *Reporter) {
		reporter.SetName(name)
	}
}

// New creates and configures a Reporter.
func New(
	rootLogger logr.Logger,
	config     ...func(reporter *Reporter),
) *Reporter {
	reporter := &Reporter{root: rootLogger}
	for _, configure := range config {
		if configure != nil {
			configure(reporter)
		}
	}
	return reporter
}

// Report logs e and returns it unchanged so it can be chained.
// Errors held on the left are logged with Logger.Error,
// any other left value is logged under the "left" key.
func Report[L, R any](
	r             *Reporter,
	e             either.Either[L, R],
	msg           string,
	keysAndValues ...any,
) either.Either[L, R] {
	if r == nil {
		panic("r cannot be nil")
	}
	if e == nil {
		panic("e cannot be nil")
	}
	kv := keysAndValues[:len(keysAndValues):len(keysAndValues)]
	e.Fold(
		func(l L) {
			if err, ok := any(l).(error); ok {
				r.root.Error(err, msg, kv...)
			} else {
				r.root.Info(msg, append(kv, "left", l)...)
			}
		},
		func(v R) {
			r.Logger().Info(msg, append(kv, "right", v)...)
		})
	return e
}
