// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

// Package flake resolves user-supplied flake references into fully qualified,
// unambiguous references a nix invocation can consume. Resolution discovers
// the enclosing git repository and the closest flake.nix so that references
// into a working copy are rewritten as git+file URLs.
package flake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nixhaven/nixos-rebuild/internal/process"
)

// Flake is a resolved reference: a location or URL plus the attribute path
// selecting one nixosConfiguration. Values are immutable once constructed.
type Flake struct {
	URL  string
	Attr string
}

func (f Flake) String() string {
	return f.URL + "#" + f.Attr
}

// ToAttr returns the canonical reference extended with further attribute
// segments, e.g. f.ToAttr("config", "system", "build", "toplevel").
func (f Flake) ToAttr(segs ...string) string {
	return f.String() + "." + strings.Join(segs, ".")
}

// Arg is the closed set of shapes the flake argument takes on the command
// line: an explicit reference, an on/off toggle, or nothing at all.
type Arg struct {
	kind argKind
	ref  string
}

type argKind int

const (
	argAbsent argKind = iota
	argRef
	argEnabled
	argDisabled
)

func RefArg(ref string) Arg {
	return Arg{kind: argRef, ref: ref}
}

func ToggleArg(on bool) Arg {
	if on {
		return Arg{kind: argEnabled}
	}
	return Arg{kind: argDisabled}
}

func AbsentArg() Arg {
	return Arg{kind: argAbsent}
}

// Resolver turns raw reference strings into Flakes. The default flake path
// (normally /etc/nixos/flake.nix) is injected so tests can point it at a
// scratch root, and the Runner is only used for the remote hostname probe.
type Resolver struct {
	Runner           process.Runner
	DefaultFlakePath string
}

const attrPrefix = `nixosConfigurations.`

// Parse splits ref on the first '#' and produces the canonical reference.
// Local paths inside a git working copy are rewritten as git+file URLs, with a
// ?dir= fragment when the closest flake.nix sits in a subdirectory of the
// repository. Resolution never fails: discovery misses degrade to narrower
// reference forms.
func (r *Resolver) Parse(ctx context.Context, ref string, target *process.Remote) Flake {
	pathPart, attrPart, _ := strings.Cut(ref, "#")
	attr := r.qualifiedAttr(ctx, attrPart, target)

	// A scheme separator means the path is already a URL; no discovery.
	if strings.Contains(pathPart, ":") {
		return Flake{URL: pathPart, Attr: attr}
	}

	root, ok := DiscoverGitRoot(pathPart)
	if !ok {
		return Flake{URL: pathPart, Attr: attr}
	}

	url := "git+file://" + root
	if flakeDir, ok := DiscoverClosestFlake(pathPart); ok && flakeDir != root {
		if rel, nested := relativeTo(flakeDir, root); nested {
			url += "?dir=" + rel
		}
	}
	return Flake{URL: url, Attr: attr}
}

// FromArg dispatches on the argument shape. An explicit reference is parsed as
// given; the toggle resolves the current directory or disables flake mode; an
// absent argument falls back to the default flake path when it exists on disk,
// resolving a symlink to the actual flake.
func (r *Resolver) FromArg(ctx context.Context, arg Arg, target *process.Remote) (Flake, bool) {
	switch arg.kind {
	case argRef:
		return r.Parse(ctx, arg.ref, target), true
	case argEnabled:
		return r.Parse(ctx, ".", target), true
	case argDisabled:
		return Flake{}, false
	case argAbsent:
		if r.DefaultFlakePath == "" {
			return Flake{}, false
		}
		if _, err := os.Stat(r.DefaultFlakePath); err != nil {
			return Flake{}, false
		}
		path := r.DefaultFlakePath
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}
		return r.Parse(ctx, filepath.Dir(path), target), true
	}
	return Flake{}, false
}

// qualifiedAttr computes the attribute path. Only the quoted canonical form is
// treated as already qualified, which makes Parse idempotent over its own
// output without exempting unquoted user input from qualification. The name is
// always quoted: attribute names may contain characters that need escaping.
func (r *Resolver) qualifiedAttr(ctx context.Context, attrPart string, target *process.Remote) string {
	if strings.HasPrefix(attrPart, attrPrefix+`"`) {
		return attrPart
	}
	name := attrPart
	if name == "" {
		name = r.hostname(ctx, target)
	}
	if name == "" {
		name = "default"
	}
	return fmt.Sprintf("%s%q", attrPrefix, name)
}

func relativeTo(dir, root string) (string, bool) {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", false
	}
	return rel, true
}
