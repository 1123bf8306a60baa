// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

// Package cmd holds the pieces shared by every subcommand: the common flag
// set, the environment assembled from those flags, and the usage templates.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nixhaven/nixos-rebuild/internal/cli/config"
	"github.com/nixhaven/nixos-rebuild/internal/flake"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

// Env is everything a subcommand needs to run, assembled once from the flags
// and the config file at the start of RunE.
type Env struct {
	Settings  config.Settings
	Runner    process.Runner
	Resolver  *flake.Resolver
	FlakeArg  flake.Arg
	BuildAttr model.BuildAttr
	Target    *process.Remote
	Profile   model.Profile
	ExtraArgs []string
}

// AddCommonFlags registers the flags every rebuild-style command understands.
func AddCommonFlags(command *cobra.Command) {
	command.Flags().String("flake", "", "Flake reference to build (a bare --flake resolves the current directory)")
	command.Flags().Lookup("flake").NoOptDefVal = "."
	command.Flags().Bool("no-flake", false, "Force legacy (non-flake) mode even when a default flake exists")
	command.Flags().String("attr", "", "Attribute within the nix file to build (legacy mode)")
	command.Flags().String("file", "", "Nix file to build from (legacy mode)")
	command.Flags().String("target-host", "", "Host to activate the configuration on, e.g. root@mule")
	command.Flags().String("profile-name", "system", "Profile to record generations under")
	command.Flags().String("config", "", "Path to config file")
	command.Flags().StringArray("option", nil, "Extra arguments passed through to nix")
}

// FlakeArgFromCmd maps the --flake / --no-flake flag pair onto the closed
// argument shape the resolver dispatches on.
func FlakeArgFromCmd(command *cobra.Command) flake.Arg {
	if noFlake, _ := command.Flags().GetBool("no-flake"); noFlake {
		return flake.ToggleArg(false)
	}
	if command.Flags().Changed("flake") {
		ref, _ := command.Flags().GetString("flake")
		return flake.RefArg(ref)
	}
	return flake.AbsentArg()
}

// EnvFromCmd loads the config file and turns the common flags into an Env.
func EnvFromCmd(command *cobra.Command) (*Env, error) {
	configFile, _ := command.Flags().GetString("config")
	settings, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	attr, _ := command.Flags().GetString("attr")
	file, _ := command.Flags().GetString("file")
	profileName, _ := command.Flags().GetString("profile-name")
	extraArgs, _ := command.Flags().GetStringArray("option")

	profile, err := model.ProfileFromName(profileName, settings.SystemProfile, settings.ProfilesDirectory)
	if err != nil {
		return nil, err
	}

	var target *process.Remote
	if host, _ := command.Flags().GetString("target-host"); host != "" {
		target = &process.Remote{Host: host, Opts: settings.SSHOptions}
	}

	runner := process.ExecRunner{}

	return &Env{
		Settings:  settings,
		Runner:    runner,
		Resolver:  &flake.Resolver{Runner: runner, DefaultFlakePath: settings.DefaultFlakePath},
		FlakeArg:  FlakeArgFromCmd(command),
		BuildAttr: model.BuildAttrFromArg(attr, file),
		Target:    target,
		Profile:   profile,
		ExtraArgs: extraArgs,
	}, nil
}
