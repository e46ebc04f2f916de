package server

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// ZerologLogger writes informational lines to one writer and errors to
// another.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewDefaultLogger logs to stdout, with errors on stderr.
func NewDefaultLogger() *ZerologLogger {
	return NewZerologLogger(os.Stdout, os.Stderr, zerolog.InfoLevel)
}

func NewZerologLogger(stdout, stderr io.Writer, level zerolog.Level) *ZerologLogger {
	console := func(w io.Writer) io.Writer {
		return zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05.000"}
	}
	w := levelSplitWriter{out: console(stdout), err: console(stderr)}

	return &ZerologLogger{
		zl: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func (l *ZerologLogger) Debug(msg string, fields ...Field) {
	l.log(l.zl.Debug(), msg, fields)
}

func (l *ZerologLogger) Info(msg string, fields ...Field) {
	l.log(l.zl.Info(), msg, fields)
}

func (l *ZerologLogger) Warn(msg string, fields ...Field) {
	l.log(l.zl.Warn(), msg, fields)
}

func (l *ZerologLogger) Error(msg string, fields ...Field) {
	l.log(l.zl.Error(), msg, fields)
}

func (l *ZerologLogger) log(e *zerolog.Event, msg string, fields []Field) {
	if e == nil {
		return
	}
	for _, f := range fields {
		switch v := sanitizeValue(f.Value).(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	e.Msg(msg)
}

// levelSplitWriter sends error and above to err, everything else to out.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level != zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

// Don't log full values of long strings
func sanitizeValue(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		if len(s) > 100 {
			return s[:100] + "...[truncated]"
		}
	}
	return v
}

// NullLogger discards all logs (for testing)
type NullLogger struct{}

func (n *NullLogger) Debug(msg string, fields ...Field) {}
func (n *NullLogger) Info(msg string, fields ...Field)  {}
func (n *NullLogger) Warn(msg string, fields ...Field)  {}
func (n *NullLogger) Error(msg string, fields ...Field) {}
