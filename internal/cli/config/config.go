// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName  = "config.yaml"
	ConfigDirectory = ".config/nixos-rebuild"
	DataDirectory   = ".local/state/nixos-rebuild"
)

// Settings carries the well-known paths the tool depends on. Everything here
// defaults to the standard NixOS locations; the config file (or a test) can
// substitute any of them, so nothing is looked up ambiently.
type Settings struct {
	SystemProfile     string   `yaml:"system-profile"`
	ProfilesDirectory string   `yaml:"profiles-directory"`
	DefaultFlakePath  string   `yaml:"default-flake"`
	SSHOptions        []string `yaml:"ssh-options"`
}

func Default() Settings {
	return Settings{
		SystemProfile:     "/nix/var/nix/profiles/system",
		ProfilesDirectory: "/nix/var/nix/profiles/system-profiles",
		DefaultFlakePath:  "/etc/nixos/flake.nix",
	}
}

// Load returns the defaults overlaid with the YAML config file. An explicit
// path must exist; the implicit per-user file is optional.
func Load(path string) (Settings, error) {
	settings := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(UserConfigDirectory(), ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse config %s: %w", path, err)
	}
	return settings, nil
}

func UserConfigDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirectory)
}

func UserDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DataDirectory)
}

func LogFilePath() string {
	return filepath.Join(UserDataDirectory(), "log", "nixos-rebuild.log")
}
