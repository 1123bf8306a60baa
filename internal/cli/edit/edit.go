// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package edit

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nixhaven/nixos-rebuild/internal/cli/cmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/config"
	"github.com/nixhaven/nixos-rebuild/internal/logging"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

func EditCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   model.ActionEdit.String(),
		Short: "Open the configuration in $EDITOR",
		PreRun: func(*cobra.Command, []string) {
			logging.SetupClientLogging(config.LogFilePath())
		},
		RunE: func(command *cobra.Command, args []string) error {
			env, err := cmd.EnvFromCmd(command)
			if err != nil {
				return err
			}
			return runEdit(command.Context(), env)
		},
		Annotations:   map[string]string{"type": "Tooling"},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)
	cmd.AddCommonFlags(command)

	return command
}

func runEdit(ctx context.Context, env *cmd.Env) error {
	if flk, ok := env.Resolver.FromArg(ctx, env.FlakeArg, env.Target); ok {
		_, err := env.Runner.Run(ctx, process.Command{
			Argv: []string{"nix", "--extra-experimental-features", "nix-command flakes", "edit", "--", flk.String()},
		})
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		return model.Errorf("$EDITOR is not set")
	}
	_, err := env.Runner.Run(ctx, process.Command{Argv: []string{editor, env.BuildAttr.Path}})
	return err
}
