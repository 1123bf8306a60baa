// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

// Package buildcmd implements the build-only commands: build, dry-build,
// dry-run, build-vm, build-vm-with-bootloader, and build-image. Nothing here
// activates anything or records a generation.
package buildcmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nixhaven/nixos-rebuild/internal/cli/cmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/config"
	"github.com/nixhaven/nixos-rebuild/internal/cli/display"
	"github.com/nixhaven/nixos-rebuild/internal/logging"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/nix"
)

func BuildCmd() *cobra.Command {
	return newCommand(model.ActionBuild, "Build the configuration and print the resulting store path")
}

func DryBuildCmd() *cobra.Command {
	return newCommand(model.ActionDryBuild, "Show what building the configuration would do")
}

// DryRunCmd is the historical spelling of dry-build.
func DryRunCmd() *cobra.Command {
	return newCommand(model.ActionDryRun, "Show what building the configuration would do (alias of dry-build)")
}

func BuildVMCmd() *cobra.Command {
	return newCommand(model.ActionBuildVM, "Build a virtual machine running the configuration")
}

func BuildVMWithBootloaderCmd() *cobra.Command {
	return newCommand(model.ActionBuildVMWithBootloader, "Build a virtual machine that boots the configuration through its bootloader")
}

func BuildImageCmd() *cobra.Command {
	command := newCommand(model.ActionBuildImage, "Build a disk image of the configuration")
	command.Flags().String("image-variant", "", "Which image variant to build, e.g. amazon or iso")
	return command
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
			variant, _ := command.Flags().GetString("image-variant")
			return runBuild(command.Context(), env, action, variant)
		},
		Annotations:   map[string]string{"type": "Build"},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)
	cmd.AddCommonFlags(command)

	return command
}

func runBuild(ctx context.Context, env *cmd.Env, action model.Action, imageVariant string) error {
	target, err := nix.BuildTarget(action, imageVariant)
	if err != nil {
		return err
	}
	dry := action == model.ActionDryBuild || action == model.ActionDryRun

	var storePath string
	if flk, ok := env.Resolver.FromArg(ctx, env.FlakeArg, env.Target); ok {
		slog.Info("building configuration", "flake", flk.String(), "dry", dry)
		storePath, err = nix.Build(ctx, env.Runner, flk, target, dry, env.ExtraArgs)
	} else {
		slog.Info("building configuration", "file", env.BuildAttr.Path, "attr", env.BuildAttr.Attr, "dry", dry)
		storePath, err = nix.BuildLegacy(ctx, env.Runner, env.BuildAttr, target, dry, env.ExtraArgs)
	}
	if err != nil {
		return err
	}
	if dry {
		return nil
	}

	fmt.Println(storePath)

	if action == model.ActionBuildVM || action == model.ActionBuildVMWithBootloader {
		display.Success(fmt.Sprintf("Run the VM with a script under %s", filepath.Join(storePath, "bin")))
	}
	return nil
}
