// Package runner provides an abstraction layer for subprocess execution.
//
// The bootstrap sequence is a chain of blocking subprocess calls (package
// installer, toolkit probe, server launch). The Runner interface separates
// the pipeline logic from process mechanics, making it easy to mock
// executions for unit testing (as seen in core/runner/mocks).
//
// # Operations
//
//   - Run: start a command, stream and capture its output, wait for exit.
//   - Exec: replace the current process image with the command (final
//     hand-off to the dashboard server).
//
// # Usage
//
//	run := runner.NewHost()
//	res, err := run.Run(ctx, runner.Command{Binary: "python3", Args: []string{"-m", "pip", "--version"}})
package runner
