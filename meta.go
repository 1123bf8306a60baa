// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package rebuild

var Version = "0.0.0"

const Repository = "https://github.com/nixhaven/nixos-rebuild"
