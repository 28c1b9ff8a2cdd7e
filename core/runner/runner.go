package runner

import "context"

// Command describes a subprocess to run.
type Command struct {
	// Binary is the executable name, resolved against PATH.
	Binary string
	// Args are the arguments, not including the binary itself.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env are KEY=VALUE pairs appended to the inherited environment.
	Env []string
}

// Result is the outcome of a completed subprocess.
type Result struct {
	// ExitCode is the process exit status.
	ExitCode int
	// Output is the combined stdout and stderr of the process.
	Output string
}

// Runner abstracts subprocess execution so the bootstrap pipeline can be
// tested without spawning real processes.
type Runner interface {
	// Run executes the command and blocks until it exits. The child's output
	// is streamed to the launcher's stdout and returned in the Result. A
	// non-zero exit is reported as an error with the Result still populated.
	Run(ctx context.Context, cmd Command) (*Result, error)

	// Exec replaces the current process image with the command. On success it
	// never returns; the child inherits the process lifetime and its exit
	// code becomes ours.
	Exec(cmd Command) error
}
