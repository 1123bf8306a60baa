// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package repl

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nixhaven/nixos-rebuild/internal/cli/cmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/config"
	"github.com/nixhaven/nixos-rebuild/internal/logging"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

func ReplCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   model.ActionRepl.String(),
		Short: "Open a nix repl on the configuration",
		PreRun: func(*cobra.Command, []string) {
			logging.SetupClientLogging(config.LogFilePath())
		},
		RunE: func(command *cobra.Command, args []string) error {
			env, err := cmd.EnvFromCmd(command)
			if err != nil {
				return err
			}
			return runRepl(command.Context(), env)
		},
		Annotations:   map[string]string{"type": "Tooling"},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)
	cmd.AddCommonFlags(command)

	return command
}

func runRepl(ctx context.Context, env *cmd.Env) error {
	if flk, ok := env.Resolver.FromArg(ctx, env.FlakeArg, env.Target); ok {
		_, err := env.Runner.Run(ctx, process.Command{
			Argv: []string{"nix", "--extra-experimental-features", "nix-command flakes", "repl", flk.String()},
		})
		return err
	}

	argv := []string{"nix", "repl", "--file", env.BuildAttr.Path}
	if env.BuildAttr.Attr != "" {
		argv = append(argv, env.BuildAttr.Attr)
	}
	_, err := env.Runner.Run(ctx, process.Command{Argv: argv})
	return err
}
