// Package logging defines the minimal leveled logger the library emits
// diagnostics through.
//
// The engine logs very little: numerical health warnings such as an
// imaginary residue above tolerance. Hosts that want those messages routed
// into their own logging install an implementation with Set; hosts that
// want silence install NoOp.
package logging

import "maps"

// Level orders log severities.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields carries structured context attached to a message.
type Fields map[string]any

// Logger is the interface the library logs through.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger that attaches the given fields to every
	// message.
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum level that is emitted.
	SetLevel(level Level)
}

var global Logger = NewDefault()

// Set installs the process-wide logger. A nil logger installs NoOp.
func Set(logger Logger) {
	if logger == nil {
		global = NoOp{}
		return
	}
	global = logger
}

// Get returns the process-wide logger.
func Get() Logger {
	return global
}

// Warn logs through the process-wide logger.
func Warn(msg string, fields ...Fields) {
	global.Warn(msg, fields...)
}

func mergeFields(base Fields, extra []Fields) Fields {
	merged := make(Fields, len(base))
	maps.Copy(merged, base)
	for _, f := range extra {
		maps.Copy(merged, f)
	}
	return merged
}

// NoOp discards every message.
type NoOp struct{}

func (NoOp) Debug(string, ...Fields)        {}
func (NoOp) Info(string, ...Fields)         {}
func (NoOp) Warn(string, ...Fields)         {}
func (NoOp) Error(error, string, ...Fields) {}
func (n NoOp) WithFields(Fields) Logger     { return n }
func (NoOp) SetLevel(Level)                 {}
