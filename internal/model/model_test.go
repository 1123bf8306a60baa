// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

//go:build unit

package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Run("every listed action round-trips", func(t *testing.T) {
		for _, a := range Actions() {
			parsed, err := ParseAction(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, parsed)
		}
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		_, err := ParseAction("reboot")
		require.Error(t, err)
		assert.Equal(t, "error: unknown action: reboot", err.Error())
	})
}

func TestBuildAttr(t *testing.T) {
	t.Run("defaults to nixpkgs nixos with no attribute", func(t *testing.T) {
		ba := BuildAttrFromArg("", "")
		assert.Equal(t, BuildAttr{Path: FallbackBuildPath}, ba)
	})

	t.Run("file defaults to default.nix when only attr is given", func(t *testing.T) {
		ba := BuildAttrFromArg("machines.mule", "")
		assert.Equal(t, BuildAttr{Path: "default.nix", Attr: "machines.mule"}, ba)
	})

	t.Run("to attr joins segments", func(t *testing.T) {
		assert.Equal(t, "config.system.build.toplevel",
			BuildAttr{Path: "default.nix"}.ToAttr("config", "system", "build", "toplevel"))
		assert.Equal(t, "machines.mule.config.system.build.toplevel",
			BuildAttr{Path: "default.nix", Attr: "machines.mule"}.ToAttr("config", "system", "build", "toplevel"))
	})
}

func TestProfileFromName(t *testing.T) {
	t.Run("system maps to the system profile path", func(t *testing.T) {
		p, err := ProfileFromName("system", "/nix/var/nix/profiles/system", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "system", p.Name)
		assert.Equal(t, "/nix/var/nix/profiles/system", p.Path)
	})

	t.Run("named profiles live under the profiles directory", func(t *testing.T) {
		profilesDir := filepath.Join(t.TempDir(), "system-profiles")
		p, err := ProfileFromName("staging", "/nix/var/nix/profiles/system", profilesDir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(profilesDir, "staging"), p.Path)

		info, err := os.Stat(profilesDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
