// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package display

import (
	gkcolor "github.com/gookit/color"
)

func Green(s string) string {
	return gkcolor.FgGreen.Sprint(s)
}

func Red(s string) string {
	return gkcolor.FgRed.Sprint(s)
}

func Grey(s string) string {
	return gkcolor.RGB(138, 138, 138).Sprint(s)
}

func Gold(s string) string {
	return gkcolor.RGB(181, 181, 91).Sprint(s)
}

func LightBlue(s string) string {
	return gkcolor.HiBlue.Sprint(s)
}
