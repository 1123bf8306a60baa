// © 2026 Nixhaven Contributors
//
// SPDX-License-Identifier: MIT

package process

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Remote identifies a host reachable over ssh, e.g. "root@builder".
type Remote struct {
	Host string
	Opts []string
}

// Command describes a single invocation. When Remote is set the argv is wrapped
// in an ssh call to that host.
type Command struct {
	Argv    []string
	Remote  *Remote
	Capture bool
	Dir     string
}

// Runner runs a command, optionally on a remote host, and returns its captured
// standard output. A non-zero exit is reported as an error carrying the
// command's stderr when it was captured.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner is the os/exec backed Runner used outside of tests.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, cmd Command) (string, error) {
	argv := Argv(cmd)
	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}

	slog.Debug("running command", "argv", strings.Join(argv, " "))

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin

	if !cmd.Capture {
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return "", fmt.Errorf("%s: %w", argv[0], err)
		}
		return "", nil
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %s", argv[0], msg)
		}
		return "", fmt.Errorf("%s: %w", argv[0], err)
	}
	return stdout.String(), nil
}

// Argv returns the final argument vector for cmd, including the ssh wrapping
// for remote commands.
func Argv(cmd Command) []string {
	if cmd.Remote == nil {
		return cmd.Argv
	}
	argv := append([]string{"ssh"}, cmd.Remote.Opts...)
	argv = append(argv, cmd.Remote.Host, "--")
	return append(argv, cmd.Argv...)
}
