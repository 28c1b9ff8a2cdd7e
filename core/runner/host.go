package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Host executes commands directly on the host with os/exec. No sandboxing,
// no resource limits; the hosting platform supervises the process tree.
type Host struct{}

// NewHost creates a new host runner.
func NewHost() *Host {
	return &Host{}
}

// Run executes the command and waits for it. Output is streamed to stdout so
// that the platform log stream shows installer progress live, and captured
// for the caller.
func (h *Host) Run(ctx context.Context, cmd Command) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Binary, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), cmd.Env)

	var buf bytes.Buffer
	out := io.MultiWriter(os.Stdout, &buf)
	c.Stdout = out
	c.Stderr = out

	err := c.Run()
	res := &Result{Output: buf.String()}
	if c.ProcessState != nil {
		res.ExitCode = c.ProcessState.ExitCode()
	}

	if err != nil {
		return res, fmt.Errorf("%s: %w", cmd.Binary, err)
	}
	return res, nil
}

// Exec replaces the launcher's process image with the command. The working
// directory is switched first because execve has no directory parameter.
func (h *Host) Exec(cmd Command) error {
	path, err := exec.LookPath(cmd.Binary)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", cmd.Binary, err)
	}

	if cmd.Dir != "" {
		if err := os.Chdir(cmd.Dir); err != nil {
			return fmt.Errorf("chdir %s: %w", cmd.Dir, err)
		}
	}

	argv := append([]string{cmd.Binary}, cmd.Args...)
	env := mergeEnv(os.Environ(), cmd.Env)
	return syscall.Exec(path, argv, env)
}
