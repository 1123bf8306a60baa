// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package flake

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/nixhaven/nixos-rebuild/internal/process"
)

// hostname reports the name used for the default attribute. For a remote
// target it probes with `uname -n`; the probe is best-effort and any failure
// yields the empty string so the caller falls back to "default".
func (r *Resolver) hostname(ctx context.Context, target *process.Remote) string {
	if target != nil {
		if r.Runner == nil {
			return ""
		}
		out, err := r.Runner.Run(ctx, process.Command{
			Argv:    []string{"uname", "-n"},
			Remote:  target,
			Capture: true,
		})
		if err != nil {
			slog.Debug("remote hostname probe failed", "host", target.Host, "error", err)
			return ""
		}
		return strings.TrimSpace(out)
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return ""
	}
	return info.Hostname
}
