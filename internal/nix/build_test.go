// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

//go:build unit

package nix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixhaven/nixos-rebuild/internal/flake"
	"github.com/nixhaven/nixos-rebuild/internal/model"
	"github.com/nixhaven/nixos-rebuild/internal/process"
)

type recordingRunner struct {
	out  string
	argv []string
}

func (r *recordingRunner) Run(_ context.Context, cmd process.Command) (string, error) {
	r.argv = cmd.Argv
	return r.out, nil
}

func TestBuildTarget(t *testing.T) {
	t.Run("activating actions build the toplevel", func(t *testing.T) {
		for _, action := range []model.Action{model.ActionSwitch, model.ActionBoot, model.ActionTest, model.ActionBuild} {
			target, err := BuildTarget(action, "")
			require.NoError(t, err)
			assert.Equal(t, "toplevel", target)
		}
	})

	t.Run("vm variants", func(t *testing.T) {
		target, err := BuildTarget(model.ActionBuildVM, "")
		require.NoError(t, err)
		assert.Equal(t, "vm", target)

		target, err = BuildTarget(model.ActionBuildVMWithBootloader, "")
		require.NoError(t, err)
		assert.Equal(t, "vmWithBootLoader", target)
	})

	t.Run("image builds need a variant", func(t *testing.T) {
		_, err := BuildTarget(model.ActionBuildImage, "")
		require.Error(t, err)

		target, err := BuildTarget(model.ActionBuildImage, "amazon")
		require.NoError(t, err)
		assert.Equal(t, "images.amazon", target)
	})

	t.Run("non-building actions are rejected", func(t *testing.T) {
		_, err := BuildTarget(model.ActionListGenerations, "")
		require.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the flake attribute and trims the store path", func(t *testing.T) {
		runner := &recordingRunner{out: "/nix/store/abc-nixos-system\n"}
		flk := flake.Flake{URL: "git+file:///cfg", Attr: `nixosConfigurations."mule"`}

		path, err := Build(ctx, runner, flk, "toplevel", false, []string{"--show-trace"})
		require.NoError(t, err)
		assert.Equal(t, "/nix/store/abc-nixos-system", path)
		assert.Contains(t, runner.argv, `git+file:///cfg#nixosConfigurations."mule".config.system.build.toplevel`)
		assert.Contains(t, runner.argv, "--show-trace")
		assert.NotContains(t, runner.argv, "--dry-run")
	})

	t.Run("dry builds pass --dry-run", func(t *testing.T) {
		runner := &recordingRunner{}
		_, err := Build(ctx, runner, flake.Flake{URL: ".", Attr: "x"}, "toplevel", true, nil)
		require.NoError(t, err)
		assert.Contains(t, runner.argv, "--dry-run")
	})
}

func TestBuildLegacy(t *testing.T) {
	t.Run("toplevel maps to the legacy system attribute", func(t *testing.T) {
		runner := &recordingRunner{out: "/nix/store/abc\n"}
		ba := model.BuildAttrFromArg("", "")

		_, err := BuildLegacy(context.Background(), runner, ba, "toplevel", false, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"nix-build", model.FallbackBuildPath, "-A", "system", "--no-out-link"}, runner.argv)
	})
}
