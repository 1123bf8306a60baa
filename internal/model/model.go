// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Error is the single user-facing error kind. Discovery misses are not errors;
// this is reserved for conditions the user has to act on.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "error: " + e.Message
}

func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Action is the closed set of operations the tool performs. The string value is
// both the CLI spelling and the switch-to-configuration argument where one
// applies.
type Action string

const (
	ActionSwitch                Action = "switch"
	ActionBoot                  Action = "boot"
	ActionTest                  Action = "test"
	ActionBuild                 Action = "build"
	ActionEdit                  Action = "edit"
	ActionRepl                  Action = "repl"
	ActionDryBuild              Action = "dry-build"
	ActionDryRun                Action = "dry-run"
	ActionDryActivate           Action = "dry-activate"
	ActionBuildImage            Action = "build-image"
	ActionBuildVM               Action = "build-vm"
	ActionBuildVMWithBootloader Action = "build-vm-with-bootloader"
	ActionListGenerations       Action = "list-generations"
)

func (a Action) String() string {
	return string(a)
}

func Actions() []Action {
	return []Action{
		ActionSwitch,
		ActionBoot,
		ActionTest,
		ActionBuild,
		ActionEdit,
		ActionRepl,
		ActionDryBuild,
		ActionDryRun,
		ActionDryActivate,
		ActionBuildImage,
		ActionBuildVM,
		ActionBuildVMWithBootloader,
		ActionListGenerations,
	}
}

func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", Errorf("unknown action: %s", s)
}

// BuildAttr is the legacy (non-flake) invocation style: a nix file plus an
// optional attribute inside it.
type BuildAttr struct {
	Path string
	Attr string
}

// FallbackBuildPath is used when neither --attr nor --file is given.
const FallbackBuildPath = "<nixpkgs/nixos>"

func BuildAttrFromArg(attr, file string) BuildAttr {
	if attr == "" && file == "" {
		return BuildAttr{Path: FallbackBuildPath}
	}
	if file == "" {
		file = "default.nix"
	}
	return BuildAttr{Path: file, Attr: attr}
}

// ToAttr joins the given segments with dots, prefixed by the stored attribute
// when there is one.
func (b BuildAttr) ToAttr(segs ...string) string {
	attr := strings.Join(segs, ".")
	if b.Attr != "" {
		return b.Attr + "." + attr
	}
	return attr
}

// Generation is a read-only snapshot of one historical build of the system.
type Generation struct {
	ID        int
	Timestamp string
	Current   bool
}

// GenerationDetail is the per-generation shape emitted by
// `list-generations --json`.
type GenerationDetail struct {
	Generation            int      `json:"generation"`
	Date                  string   `json:"date"`
	NixOSVersion          string   `json:"nixosVersion"`
	KernelVersion         string   `json:"kernelVersion"`
	ConfigurationRevision string   `json:"configurationRevision"`
	Specialisations       []string `json:"specialisations"`
	Current               bool     `json:"current"`
}

// Profile names a generation chain. The "system" profile lives at a fixed
// location; named profiles live under the profiles directory, which is created
// when missing.
type Profile struct {
	Name string
	Path string
}

func ProfileFromName(name, systemProfile, profilesDir string) (Profile, error) {
	if name == "system" {
		return Profile{Name: name, Path: systemProfile}, nil
	}
	if err := os.MkdirAll(profilesDir, 0o755); err != nil {
		return Profile{}, fmt.Errorf("create profiles directory: %w", err)
	}
	return Profile{Name: name, Path: filepath.Join(profilesDir, name)}, nil
}
