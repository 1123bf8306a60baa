// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/nixhaven/nixos-rebuild/internal/cli/display"
)

var RootCmdUsageTemplate = display.Grey("Usage: ") + display.Green("{{.CommandPath}} [OPTIONS] [COMMAND]\n") +
	"{{if .HasAvailableSubCommands}}\n" + display.Gold("Commands:") + "{{$types := typeMap .Commands}}" +
	"{{$first := true}}{{range $type, $cmds := $types}}" +
	"{{if $first}}{{$first = false}}{{else}}\n{{end}}\n  " + display.Gold("{{$type}}:") +
	"{{range $cmd := $cmds}}\n    " + display.Green("{{rpad $cmd.Name $cmd.NamePadding}}") + "     {{$cmd.Short}}" +
	"{{end}}{{end}}\n{{end}}" +
	"{{if .HasAvailableLocalFlags}}\n" + display.Gold("Options:\n") +
	"{{range .LocalFlags | flagUsage}}{{.}}\n{{end}}" +
	"{{end}}"

var SimpleCmdUsageTemplate = display.Grey("Usage: ") + display.Green("{{.CommandPath}}{{if .HasAvailableLocalFlags}} [OPTIONS]{{end}}") +
	display.Green("{{if index .Annotations \"args\"}} {{index .Annotations \"args\"}}{{end}}") + "\n" +
	"{{if .HasAvailableLocalFlags}}\n" + display.Gold("Options:\n") +
	"{{range .LocalFlags | flagUsage}}{{.}}\n{{end}}" +
	"{{end}}"
