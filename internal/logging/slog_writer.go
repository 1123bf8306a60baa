// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package logging

import (
	"log/slog"
	"strings"
)

// slogWriter routes standard-log output into slog, recovering the level from
// the conventional "LEVEL " message prefix when one is present.
type slogWriter struct{}

func (w *slogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	switch {
	case strings.HasPrefix(msg, "ERROR "):
		slog.Error(strings.TrimPrefix(msg, "ERROR "))
	case strings.HasPrefix(msg, "WARN "):
		slog.Warn(strings.TrimPrefix(msg, "WARN "))
	case strings.HasPrefix(msg, "INFO "):
		slog.Info(strings.TrimPrefix(msg, "INFO "))
	default:
		slog.Debug(msg)
	}
	return len(p), nil
}
