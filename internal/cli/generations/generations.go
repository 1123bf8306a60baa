// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package generations

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/nixhaven/nixos-rebuild/internal/cli/cmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/config"
	"github.com/nixhaven/nixos-rebuild/internal/cli/printer"
	"github.com/nixhaven/nixos-rebuild/internal/logging"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/nix"
)

func ListGenerationsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   model.ActionListGenerations.String(),
		Short: "List the generations recorded under a profile",
		PreRun: func(*cobra.Command, []string) {
			logging.SetupClientLogging(config.LogFilePath())
		},
		RunE: func(command *cobra.Command, args []string) error {
			env, err := cmd.EnvFromCmd(command)
			if err != nil {
				return err
			}
			consumer := printer.ConsumerHuman
			if jsonOut, _ := command.Flags().GetBool("json"); jsonOut {
				consumer = printer.ConsumerMachine
			}
			return runListGenerations(command.Context(), env, consumer)
		},
		Annotations:   map[string]string{"type": "Tooling"},
		SilenceErrors: true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)
	cmd.AddCommonFlags(command)
	command.Flags().Bool("json", false, "Emit generations as JSON")

	return command
}

func runListGenerations(ctx context.Context, env *cmd.Env, consumer printer.Consumer) error {
	generations, err := nix.ListGenerations(env.Profile)
	if err != nil {
		return err
	}
	details := nix.GenerationDetails(ctx, env.Runner, env.Profile, generations)

	return writeGenerations(os.Stdout, env.Profile, details, consumer)
}
