// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package nix

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

// SetProfile points the profile at the given store path, recording a new
// generation. Only switch and boot persist a generation.
func SetProfile(ctx context.Context, runner process.Runner, profile model.Profile, storePath string) error {
	_, err := runner.Run(ctx, process.Command{
		Argv: []string{"nix-env", "-p", profile.Path, "--set", storePath},
	})
	if err != nil {
		return fmt.Errorf("set profile %s: %w", profile.Name, err)
	}
	return nil
}

// SwitchToConfiguration runs the activation script of a built configuration,
// locally or on the target host.
func SwitchToConfiguration(ctx context.Context, runner process.Runner, storePath string, action model.Action, target *process.Remote) error {
	switch action {
	case model.ActionSwitch, model.ActionBoot, model.ActionTest, model.ActionDryActivate:
	default:
		return model.Errorf("cannot activate with action %s", action)
	}

	_, err := runner.Run(ctx, process.Command{
		Argv:   []string{filepath.Join(storePath, "bin", "switch-to-configuration"), action.String()},
		Remote: target,
	})
	if err != nil {
		return fmt.Errorf("switch to configuration: %w", err)
	}
	return nil
}
