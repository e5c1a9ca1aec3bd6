package exprparse

import "github.com/sirupsen/logrus"

// Option is an option used when creating an Expression.
type Option interface {
	option(*options)
}

// options holds the settings of an Expression.
type options struct {
	// log receives debug messages about registration, parsing, and
	// evaluation failures.
	log logrus.FieldLogger
	// keep indicates that a failed Parse leaves the previous tree in place.
	keep bool
}

type (
	logopt  struct{ log logrus.FieldLogger }
	keepopt struct{}
)

// WithLogger sets the logger for an Expression. The default is the logrus
// standard logger. Failures are logged at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return logopt{log}
}

func (o logopt) option(p *options) {
	if o.log == nil {
		p.log = logrus.StandardLogger()
		return
	}
	p.log = o.log
}

// KeepOnFailure makes a failed Parse keep the tree from the last successful
// Parse. By default, a failed Parse leaves the Expression uncompiled.
func KeepOnFailure() Option {
	return keepopt{}
}

func (keepopt) option(p *options) {
	p.keep = true
}
