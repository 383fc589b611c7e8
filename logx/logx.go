// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for the verve runtime on top
// of the standard log/slog, with colored level prefixes on terminals
// that support it.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected with
// command-line flags. Messages below this level are not shown.
// The default depends on the debug/release build tags.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the level that should be used
// based on the given user flags.
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func init() {
	slog.SetDefault(slog.New(newHandler(os.Stderr)))
}

// handler is a slog.Handler that prints compact, level-colored lines.
type handler struct {
	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

func newHandler(w io.Writer) *handler {
	return &handler{w: w, out: termenv.NewOutput(w)}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(h.levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(b, " %s=%v", a.Key, a.Value)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *handler) WithGroup(name string) slog.Handler       { return h }

func (h *handler) levelLabel(level slog.Level) string {
	var color termenv.Color
	switch {
	case level >= slog.LevelError:
		color = termenv.ANSIRed
	case level >= slog.LevelWarn:
		color = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		color = termenv.ANSIBlue
	default:
		color = termenv.ANSIBrightBlack
	}
	return h.out.String(level.String() + ":").Foreground(color).String()
}

// Debug logs the given message at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs the given message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs the given message at [slog.LevelError].
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
