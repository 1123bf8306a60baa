// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
)

const Tool = "nixos-rebuild"

func Success(msg string) {
	fmt.Print(Green(fmt.Sprintf("%s\n", msg)))
}
