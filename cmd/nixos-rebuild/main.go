// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/nixhaven/nixos-rebuild/internal/cli"
	"github.com/nixhaven/nixos-rebuild/internal/logging"
)

func main() {
	logging.SetupInitialLogging()
	cli.Start()
}
