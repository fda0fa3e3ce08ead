package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Logger is a scoped structured logger. Scopes accumulate: a package creates
// one with New, methods derive per-call loggers with Function. Err and Error
// both log and return an error so call sites can `return log.Err(...)`.
type Logger struct {
	handler *slog.Logger
}

func New(scope string) Logger {
	return Logger{
		handler: slog.New(slog.NewTextHandler(os.Stdout, nil)).With("scope", scope),
	}
}

func (l Logger) Function(name string) Logger {
	return Logger{handler: l.handler.With("function", name)}
}

func (l Logger) File(name string) Logger {
	return Logger{handler: l.handler.With("file", name)}
}

func (l Logger) With(args ...any) Logger {
	return Logger{handler: l.handler.With(args...)}
}

func (l Logger) Info(msg string, args ...any) {
	l.handler.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.handler.Warn(msg, args...)
}

func (l Logger) Debug(msg string, args ...any) {
	l.handler.Debug(msg, args...)
}

// Er logs an error without returning one.
func (l Logger) Er(msg string, err error, args ...any) {
	l.handler.Error(msg, append([]any{"error", err}, args...)...)
}

// ErMsg logs an error-level message without an underlying error.
func (l Logger) ErMsg(msg string, args ...any) {
	l.handler.Error(msg, args...)
}

// Err logs and returns the error wrapped with msg.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.handler.Error(msg, append([]any{"error", err}, args...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from msg.
func (l Logger) Error(msg string, args ...any) error {
	l.handler.Error(msg, args...)
	return errors.New(msg)
}

// ErrMsg is Error without structured context.
func (l Logger) ErrMsg(msg string) error {
	l.handler.Error(msg)
	return errors.New(msg)
}
