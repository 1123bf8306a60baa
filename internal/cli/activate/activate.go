// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

// Package activate implements the commands that build a configuration and run
// its activation script: switch, boot, test, and dry-activate.
package activate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nixhaven/nixos-rebuild/internal/cli/cmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/config"
	"github.com/nixhaven/nixos-rebuild/internal/cli/display"
	"github.com/nixhaven/nixos-rebuild/internal/logging"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/nix"
)

func SwitchCmd() *cobra.Command {
	return newCommand(model.ActionSwitch, "Build, activate, and make the configuration the boot default")
}

func BootCmd() *cobra.Command {
	return newCommand(model.ActionBoot, "Build the configuration and make it the boot default without activating it")
}

func TestCmd() *cobra.Command {
	return newCommand(model.ActionTest, "Build and activate the configuration without touching the boot default")
}

func DryActivateCmd() *cobra.Command {
	return newCommand(model.ActionDryActivate, "Build the configuration and show what activating it would change")
}

func newCommand(action model.Action, short string) *cobra.Command {
	command := &cobra.Command{
		Use:   action.String(),
		Short: short,
		PreRun: func(*cobra.Command, []string) {
			logging.SetupClientLogging(config.LogFilePath())
		},
		RunE: func(command *cobra.Command, args []string) error {
			env, err := cmd.EnvFromCmd(command)
			if err != nil {
				return err
			}
			return runActivate(command.Context(), env, action)
		},
		Annotations:   map[string]string{"type": "System"},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)
	cmd.AddCommonFlags(command)

	return command
}

func runActivate(ctx context.Context, env *cmd.Env, action model.Action) error {
	target, err := nix.BuildTarget(action, "")
	if err != nil {
		return err
	}

	var storePath string
	if flk, ok := env.Resolver.FromArg(ctx, env.FlakeArg, env.Target); ok {
		slog.Info("building configuration", "flake", flk.String())
		storePath, err = nix.Build(ctx, env.Runner, flk, target, false, env.ExtraArgs)
	} else {
		slog.Info("building configuration", "file", env.BuildAttr.Path, "attr", env.BuildAttr.Attr)
		storePath, err = nix.BuildLegacy(ctx, env.Runner, env.BuildAttr, target, false, env.ExtraArgs)
	}
	if err != nil {
		return err
	}

	// Only switch and boot record a generation; test and dry-activate leave
	// the profile alone.
	if action == model.ActionSwitch || action == model.ActionBoot {
		if err := nix.SetProfile(ctx, env.Runner, env.Profile, storePath); err != nil {
			return err
		}
	}

	if err := nix.SwitchToConfiguration(ctx, env.Runner, storePath, action, env.Target); err != nil {
		return err
	}

	display.Success(fmt.Sprintf("Done. The new configuration is %s", storePath))
	return nil
}
