// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package logging

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupInitialLogging is the bootstrap configuration used before a command has
// decided where its log file lives: warnings and worse on stderr.
func SetupInitialLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelWarn,
			TimeFormat: time.RFC3339,
		}),
	))

	redirectStdLog()
}

// SetupClientLogging adds a rotating debug-level log file next to the console
// handler, so a failed rebuild can be reconstructed afterwards.
func SetupClientLogging(logFilePath string) {
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
		slog.Error("Failed to create log folder hierarchy", "error", err)
		return
	}

	lumber := &lumberjack.Logger{
		Filename: logFilePath,
		Compress: true,
	}

	handler := &teeHandler{
		file: tint.NewHandler(lumber, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC3339,
		}),
		console: tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelWarn,
			TimeFormat: time.RFC3339,
		}),
	}

	slog.SetDefault(slog.New(handler))

	redirectStdLog()
}

// redirectStdLog sends the standard log package into slog, in case some dep
// still uses it.
func redirectStdLog() {
	lw := &slogWriter{}
	log.Default().SetOutput(lw)
	log.SetOutput(lw)
}

// teeHandler fans records out to the log file and, above its threshold, the
// console.
type teeHandler struct {
	file    slog.Handler
	console slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.file.Enabled(ctx, level) || h.console.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.file.Enabled(ctx, r.Level) {
		if err := h.file.Handle(ctx, r); err != nil {
			return err
		}
	}
	if h.console.Enabled(ctx, r.Level) {
		if err := h.console.Handle(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{
		file:    h.file.WithAttrs(attrs),
		console: h.console.WithAttrs(attrs),
	}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{
		file:    h.file.WithGroup(name),
		console: h.console.WithGroup(name),
	}
}
