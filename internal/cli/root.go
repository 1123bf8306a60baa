// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	rebuild "github.com/nixhaven/nixos-rebuild"
	"github.com/nixhaven/nixos-rebuild/internal/cli/activate"
	"github.com/nixhaven/nixos-rebuild/internal/cli/buildcmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/cmd"
	"github.com/nixhaven/nixos-rebuild/internal/cli/display"
	"github.com/nixhaven/nixos-rebuild/internal/cli/edit"
	"github.com/nixhaven/nixos-rebuild/internal/cli/generations"
	"github.com/nixhaven/nixos-rebuild/internal/cli/repl"
)

var rootCmd = &cobra.Command{
	Use:     display.Tool,
	Short:   display.Tool + ": build and activate NixOS system configurations",
	Version: rebuild.Version,
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{
		Hidden: true,
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	cobra.AddTemplateFunc("typeMap", func(cmds []*cobra.Command) map[string][]*cobra.Command {
		m := make(map[string][]*cobra.Command)
		for _, c := range cmds {
			if c.IsAvailableCommand() {
				t := c.Annotations["type"]
				if t == "" {
					t = "Tooling"
				}
				m[t] = append(m[t], c)
			}
		}
		return m
	})

	cobra.AddTemplateFunc("flagUsage", func(f *pflag.FlagSet) []string {
		longest := 0
		f.VisitAll(func(flag *pflag.Flag) {
			length := len(flag.Name)
			if flag.Shorthand != "" {
				length += 6
			}
			if length > longest {
				longest = length
			}
		})
		longest += 10

		var usage []string
		f.VisitAll(func(flag *pflag.Flag) {
			s := fmt.Sprintf("      --%s ", flag.Name)
			if flag.Shorthand != "" {
				s = fmt.Sprintf("  -%s, --%s ", flag.Shorthand, flag.Name)
			}
			s = fmt.Sprintf("%-*s%s", longest, s, flag.Usage)
			if flag.DefValue != "" && flag.DefValue != "[]" && flag.Name != "help" && flag.Name != "version" {
				s += display.Grey(fmt.Sprintf(" [default: %q]", flag.DefValue))
			}
			usage = append(usage, s)
		})
		return usage
	})

	rootCmd.SetUsageTemplate(cmd.RootCmdUsageTemplate)

	rootCmd.AddCommand(activate.SwitchCmd())
	rootCmd.AddCommand(activate.BootCmd())
	rootCmd.AddCommand(activate.TestCmd())
	rootCmd.AddCommand(activate.DryActivateCmd())
	rootCmd.AddCommand(buildcmd.BuildCmd())
	rootCmd.AddCommand(buildcmd.DryBuildCmd())
	rootCmd.AddCommand(buildcmd.DryRunCmd())
	rootCmd.AddCommand(buildcmd.BuildVMCmd())
	rootCmd.AddCommand(buildcmd.BuildVMWithBootloaderCmd())
	rootCmd.AddCommand(buildcmd.BuildImageCmd())
	rootCmd.AddCommand(edit.EditCmd())
	rootCmd.AddCommand(repl.ReplCmd())
	rootCmd.AddCommand(generations.ListGenerationsCmd())

	rootCmd.PersistentFlags().BoolP("help", "h", false, "Show help for "+rootCmd.Use)
	for _, c := range rootCmd.Commands() {
		c.PersistentFlags().BoolP("help", "h", false, fmt.Sprintf("Show help for the %s command", c.Name()))
	}

	rootCmd.PersistentFlags().BoolP("version", "v", false, "Show "+rootCmd.Use+" version information")
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s version: %s\ngo version: %s\n", display.Tool, rebuild.Version, runtime.Version()))
}

func Start() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(display.Red(err.Error()))
		os.Exit(1)
	}
}
