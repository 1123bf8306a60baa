// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

//go:build unit

package generations

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixhaven/nixos-rebuild/internal/cli/printer"
	"github.com/nixhaven/nixos-rebuild/internal/model"
)

func TestRenderGenerations(t *testing.T) {
	profile := model.Profile{Name: "system", Path: "/nix/var/nix/profiles/system"}

	t.Run("empty profile", func(t *testing.T) {
		output, err := renderGenerations(profile, nil)
		require.NoError(t, err)
		assert.Contains(t, output, "No generations found for profile system")
	})

	t.Run("machine consumer gets JSON, human consumer gets the table", func(t *testing.T) {
		details := []model.GenerationDetail{
			{Generation: 42, Date: "2026-08-01 10:00:00", NixOSVersion: "25.05.1234.abcd", Specialisations: []string{}, Current: true},
		}

		var machine bytes.Buffer
		require.NoError(t, writeGenerations(&machine, profile, details, printer.ConsumerMachine))
		assert.Contains(t, machine.String(), `"generation":42`)

		var human bytes.Buffer
		require.NoError(t, writeGenerations(&human, profile, details, printer.ConsumerHuman))
		assert.Contains(t, human.String(), "NixOS Version")
		assert.NotContains(t, human.String(), `"generation"`)
	})

	t.Run("renders one row per generation", func(t *testing.T) {
		output, err := renderGenerations(profile, []model.GenerationDetail{
			{Generation: 42, Date: "2026-08-01 10:00:00", NixOSVersion: "25.05.1234.abcd", KernelVersion: "6.12.8", Current: true},
			{Generation: 41, Date: "2026-07-20 09:00:00", NixOSVersion: "25.05.1200.ef01", KernelVersion: "6.12.7", Specialisations: []string{"gaming"}},
		})
		require.NoError(t, err)
		assert.Contains(t, output, "42")
		assert.Contains(t, output, "25.05.1234.abcd")
		assert.Contains(t, output, "gaming")
		assert.Contains(t, output, "yes")
	})
}
