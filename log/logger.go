// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger writes key/value pairs to a Handler.
type Logger interface {
	// With returns a new Logger that has this logger's attributes plus the given attributes.
	With(ctx ...any) Logger

	// Debug logs a message at the debug level with context key/value pairs.
	Debug(msg string, ctx ...any)

	// Info logs a message at the info level with context key/value pairs.
	Info(msg string, ctx ...any)

	// Warn logs a message at the warn level with context key/value pairs.
	Warn(msg string, ctx ...any)

	// Error logs a message at the error level with context key/value pairs.
	Error(msg string, ctx ...any)

	// Handler returns the underlying handler of the inner logger.
	Handler() slog.Handler
}

type logger struct {
	inner *slog.Logger
}

// NewLogger returns a logger with the specified handler set.
func NewLogger(h slog.Handler) Logger {
	return &logger{slog.New(h)}
}

func (l *logger) Handler() slog.Handler {
	return l.inner.Handler()
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) write(level slog.Level, msg string, attrs ...any) {
	l.inner.Log(context.Background(), level, msg, attrs...)
}

func (l *logger) Debug(msg string, ctx ...any) {
	l.write(LevelDebug, msg, ctx...)
}

func (l *logger) Info(msg string, ctx ...any) {
	l.write(LevelInfo, msg, ctx...)
}

func (l *logger) Warn(msg string, ctx ...any) {
	l.write(LevelWarn, msg, ctx...)
}

func (l *logger) Error(msg string, ctx ...any) {
	l.write(LevelError, msg, ctx...)
}

var root atomic.Value

func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault sets the default global logger.
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger.
func Root() Logger {
	return root.Load().(Logger)
}

// WithContext returns a logger derived from the root logger with the
// given attributes attached. Packages use it to tag their log lines.
func WithContext(ctx ...any) Logger {
	return Root().With(ctx...)
}

// NewLogfmtLogger returns a root-independent logger printing logfmt records to stderr.
func NewLogfmtLogger(level *slog.LevelVar) Logger {
	return NewLogger(LogfmtHandlerWithLevel(os.Stderr, level))
}

// Debug logs a message at the debug level with the root logger.
func Debug(msg string, ctx ...any) {
	Root().Debug(msg, ctx...)
}

// Info logs a message at the info level with the root logger.
func Info(msg string, ctx ...any) {
	Root().Info(msg, ctx...)
}

// Warn logs a message at the warn level with the root logger.
func Warn(msg string, ctx ...any) {
	Root().Warn(msg, ctx...)
}

// Error logs a message at the error level with the root logger.
func Error(msg string, ctx ...any) {
	Root().Error(msg, ctx...)
}
