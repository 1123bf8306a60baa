// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

// Package nix delegates to the nix toolchain: realizing system configurations,
// pointing profiles at them, activating them, and reading generation history
// back out of a profile directory.
package nix

import (
	"context"
	"fmt"
	"strings"

	"github.com/nixhaven/nixos-rebuild/internal/flake"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

var experimentalFlags = []string{"--extra-experimental-features", "nix-command flakes"}

// BuildTarget maps an action to the attribute under config.system.build that
// realizes it. Image builds need the variant name.
func BuildTarget(action model.Action, imageVariant string) (string, error) {
	switch action {
	case model.ActionSwitch, model.ActionBoot, model.ActionTest, model.ActionDryActivate,
		model.ActionBuild, model.ActionDryBuild, model.ActionDryRun:
		return "toplevel", nil
	case model.ActionBuildVM:
		return "vm", nil
	case model.ActionBuildVMWithBootloader:
		return "vmWithBootLoader", nil
	case model.ActionBuildImage:
		if imageVariant == "" {
			return "", model.Errorf("build-image requires --image-variant")
		}
		return "images." + imageVariant, nil
	default:
		return "", model.Errorf("action %s does not build anything", action)
	}
}

// Build realizes the given attribute of a flake reference and returns the
// resulting store path. Dry builds return an empty path.
func Build(ctx context.Context, runner process.Runner, flk flake.Flake, target string, dry bool, extraArgs []string) (string, error) {
	argv := []string{"nix"}
	argv = append(argv, experimentalFlags...)
	argv = append(argv, "build", "--print-out-paths", flk.ToAttr("config", "system", "build", target))
	if dry {
		argv = append(argv, "--dry-run")
	}
	argv = append(argv, extraArgs...)

	out, err := runner.Run(ctx, process.Command{Argv: argv, Capture: true})
	if err != nil {
		return "", fmt.Errorf("build %s: %w", flk.String(), err)
	}
	return strings.TrimSpace(out), nil
}

// BuildLegacy realizes a configuration from a nix file and attribute pair.
// The legacy entry points expose the toplevel as "system" rather than
// config.system.build.toplevel.
func BuildLegacy(ctx context.Context, runner process.Runner, ba model.BuildAttr, target string, dry bool, extraArgs []string) (string, error) {
	if target == "toplevel" {
		target = "system"
	}
	argv := []string{"nix-build", ba.Path, "-A", ba.ToAttr(target), "--no-out-link"}
	if dry {
		argv = append(argv, "--dry-run")
	}
	argv = append(argv, extraArgs...)

	out, err := runner.Run(ctx, process.Command{Argv: argv, Capture: true})
	if err != nil {
		return "", fmt.Errorf("build %s: %w", ba.Path, err)
	}
	return strings.TrimSpace(out), nil
}
