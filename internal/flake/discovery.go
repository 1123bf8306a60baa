// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package flake

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoverGitRoot walks upward from the canonical form of location looking for
// the enclosing git working copy. A .git directory marks the directory holding it as the root. A
// .git regular file is a worktree pointer: its "gitdir: <path>" payload is
// returned verbatim, with no normalization or existence check. The walk stops
// at the filesystem root or when the path stops being a directory.
func DiscoverGitRoot(location string) (string, bool) {
	current, ok := canonical(location)
	if !ok {
		return "", false
	}

	previous := ""
	for current != previous && isDir(current) {
		dotgit := filepath.Join(current, ".git")
		if fi, err := os.Stat(dotgit); err == nil {
			if fi.IsDir() {
				return current, true
			}
			if fi.Mode().IsRegular() {
				if target, ok := worktreeTarget(dotgit); ok {
					return target, true
				}
			}
		}
		previous = current
		current = filepath.Dir(current)
	}
	return "", false
}

// DiscoverClosestFlake returns the nearest ancestor directory of location that
// directly contains a flake.nix. Independent of git discovery: in a monorepo
// the flake may sit below the repository root.
func DiscoverClosestFlake(location string) (string, bool) {
	current, ok := canonical(location)
	if !ok {
		return "", false
	}

	previous := ""
	for current != previous && isDir(current) {
		if fi, err := os.Stat(filepath.Join(current, "flake.nix")); err == nil && fi.Mode().IsRegular() {
			return current, true
		}
		previous = current
		current = filepath.Dir(current)
	}
	return "", false
}

// canonical makes location absolute with symlinks resolved, so a walk started
// inside a symlinked working copy ascends through the real tree. A start path
// that cannot be resolved (typically because it does not exist) keeps its
// lexical absolute form.
func canonical(location string) (string, bool) {
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", false
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, true
	}
	return abs, true
}

func worktreeTarget(pointer string) (string, bool) {
	data, err := os.ReadFile(pointer)
	if err != nil {
		return "", false
	}
	if target, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir: "); ok {
		return target, true
	}
	return "", false
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
