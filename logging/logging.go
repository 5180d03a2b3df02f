// Package logging provides a small structured-logging interface
// (Logger, Level, Sublogger) backed by go.uber.org/zap.
// NewLoggerFromGolog adapts a github.com/edaniels/golog.Logger into
// this interface for components constructed the way the teacher's
// own planner constructors are, handed a golog.Logger directly.
package logging

import (
	"github.com/edaniels/golog"
	"go.uber.org/zap"
)

// Level is one of the four severities a Logger accepts.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) zapLevel() zap.AtomicLevel {
	switch l {
	case DEBUG:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case WARN:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case ERROR:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// Logger is the structured logging interface every pipeline stage
// takes: the four severities plus structured key/value pairs and named
// sub-loggers so each pipeline stage's log lines carry their own name.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Sublogger(name string) Logger
}

type impl struct {
	name string
	zap  *zap.SugaredLogger
}

// NewLogger builds a named Logger at INFO level writing to stderr.
func NewLogger(name string) Logger {
	return NewLoggerAtLevel(name, INFO)
}

// NewLoggerAtLevel builds a named Logger at the given level.
func NewLoggerAtLevel(name string, level Level) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level.zapLevel()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	z, err := cfg.Build()
	if err != nil {
		// zap.NewProductionConfig().Build() only fails on a broken
		// sink/encoder configuration, which cannot happen with the
		// literal config above.
		panic(err)
	}
	return &impl{name: name, zap: z.Sugar().Named(name)}
}

func (i *impl) Debugw(msg string, keysAndValues ...interface{}) {
	i.zap.Debugw(msg, keysAndValues...)
}

func (i *impl) Infow(msg string, keysAndValues ...interface{}) {
	i.zap.Infow(msg, keysAndValues...)
}

func (i *impl) Warnw(msg string, keysAndValues ...interface{}) {
	i.zap.Warnw(msg, keysAndValues...)
}

func (i *impl) Errorw(msg string, keysAndValues ...interface{}) {
	i.zap.Errorw(msg, keysAndValues...)
}

func (i *impl) Sublogger(name string) Logger {
	return &impl{name: i.name + "." + name, zap: i.zap.Named(name)}
}

// gologAdapter satisfies Logger over a github.com/edaniels/golog.Logger,
// the logger type go.viam.com/rdk/motionplan's planner constructors take
// directly as an argument.
type gologAdapter struct {
	name string
	base golog.Logger
}

// NewLoggerFromGolog adapts an already-constructed golog.Logger into
// this package's Logger interface, for components wired up the way
// the teacher's planner constructors are: handed a golog.Logger at
// construction time rather than building their own.
func NewLoggerFromGolog(name string, base golog.Logger) Logger {
	return &gologAdapter{name: name, base: base}
}

func (g *gologAdapter) Debugw(msg string, keysAndValues ...interface{}) {
	g.base.Debugw(msg, keysAndValues...)
}

func (g *gologAdapter) Infow(msg string, keysAndValues ...interface{}) {
	g.base.Infow(msg, keysAndValues...)
}

func (g *gologAdapter) Warnw(msg string, keysAndValues ...interface{}) {
	g.base.Warnw(msg, keysAndValues...)
}

func (g *gologAdapter) Errorw(msg string, keysAndValues ...interface{}) {
	g.base.Errorw(msg, keysAndValues...)
}

func (g *gologAdapter) Sublogger(name string) Logger {
	return &gologAdapter{name: g.name + "." + name, base: g.base.Named(name)}
}

// Assert logs msg at ERROR and panics if cond is false. Reserved for
// programmer invariants the process cannot recover from — a malformed
// caller wiring, not a bad input — never for conditions a caller can
// reasonably trigger through normal operation.
func Assert(logger Logger, cond bool, msg string, keysAndValues ...interface{}) {
	if cond {
		return
	}
	if logger != nil {
		logger.Errorw(msg, keysAndValues...)
	}
	panic(msg)
}
