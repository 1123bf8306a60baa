// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

//go:build unit

package flake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scratchDir returns a temp dir with symlinks resolved, so discovered paths
// compare equal to the paths the test created.
func scratchDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverGitRoot(t *testing.T) {
	t.Run("finds the directory holding .git", func(t *testing.T) {
		root := scratchDir(t)
		mkdirAll(t, filepath.Join(root, ".git"))
		mkdirAll(t, filepath.Join(root, "modules", "hosts"))

		found, ok := DiscoverGitRoot(filepath.Join(root, "modules", "hosts"))
		require.True(t, ok)
		assert.Equal(t, root, found)
	})

	t.Run("worktree pointer is returned verbatim", func(t *testing.T) {
		root := scratchDir(t)
		writeFile(t, filepath.Join(root, ".git"), "gitdir: /elsewhere/.git\n")

		found, ok := DiscoverGitRoot(root)
		require.True(t, ok)
		assert.Equal(t, "/elsewhere/.git", found)
	})

	t.Run("pointer with unexpected content keeps walking", func(t *testing.T) {
		root := scratchDir(t)
		mkdirAll(t, filepath.Join(root, ".git"))
		sub := filepath.Join(root, "vendored")
		mkdirAll(t, sub)
		writeFile(t, filepath.Join(sub, ".git"), "not a pointer\n")

		found, ok := DiscoverGitRoot(sub)
		require.True(t, ok)
		assert.Equal(t, root, found)
	})

	t.Run("symlinked start path resolves into the real tree", func(t *testing.T) {
		base := scratchDir(t)
		repo := filepath.Join(base, "repo")
		mkdirAll(t, filepath.Join(repo, ".git"))
		nested := filepath.Join(repo, "a", "b")
		mkdirAll(t, nested)
		link := filepath.Join(base, "link")
		require.NoError(t, os.Symlink(nested, link))

		found, ok := DiscoverGitRoot(link)
		require.True(t, ok)
		assert.Equal(t, repo, found)
	})

	t.Run("no repository yields not found", func(t *testing.T) {
		_, ok := DiscoverGitRoot(scratchDir(t))
		assert.False(t, ok)
	})

	t.Run("missing start path yields not found", func(t *testing.T) {
		_, ok := DiscoverGitRoot(filepath.Join(scratchDir(t), "does", "not", "exist"))
		assert.False(t, ok)
	})

	t.Run("terminates at the filesystem root", func(t *testing.T) {
		_, ok := DiscoverGitRoot("/")
		assert.False(t, ok)
	})
}

func TestDiscoverClosestFlake(t *testing.T) {
	t.Run("first match wins walking upward", func(t *testing.T) {
		root := scratchDir(t)
		writeFile(t, filepath.Join(root, "flake.nix"), "{}")
		sub := filepath.Join(root, "sub", "dir")
		mkdirAll(t, sub)
		writeFile(t, filepath.Join(root, "sub", "flake.nix"), "{}")

		found, ok := DiscoverClosestFlake(sub)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "sub"), found)
	})

	t.Run("no manifest yields not found", func(t *testing.T) {
		_, ok := DiscoverClosestFlake(scratchDir(t))
		assert.False(t, ok)
	})

	t.Run("symlinked start path resolves into the real tree", func(t *testing.T) {
		base := scratchDir(t)
		root := filepath.Join(base, "cfg")
		mkdirAll(t, root)
		writeFile(t, filepath.Join(root, "flake.nix"), "{}")
		link := filepath.Join(base, "link")
		require.NoError(t, os.Symlink(root, link))

		found, ok := DiscoverClosestFlake(link)
		require.True(t, ok)
		assert.Equal(t, root, found)
	})

	t.Run("a flake.nix directory does not match", func(t *testing.T) {
		root := scratchDir(t)
		mkdirAll(t, filepath.Join(root, "flake.nix"))

		_, ok := DiscoverClosestFlake(root)
		assert.False(t, ok)
	})
}
