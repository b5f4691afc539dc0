package nearcli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// ExternalCommandError reports a tool invocation that could not be started or
// exited non-zero. The exit status is the only failure signal this package
// interprets.
type ExternalCommandError struct {
	Op      string
	Account string
	Err     error
}

func (e *ExternalCommandError) Error() string {
	if e.Account == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Account, e.Err)
}

func (e *ExternalCommandError) Unwrap() error { return e.Err }

// ExecRunner invokes commands as child processes, one at a time, blocking
// until each completes. No retry and no timeout: duration and interruption are
// governed by the tool and its host environment.
type ExecRunner struct {
	log *zap.SugaredLogger

	// Stdout and Stderr receive the tool's captured output once a command
	// completes. They default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a runner that logs each invocation through log and relays
// tool output to the process streams.
func NewRunner(log *zap.SugaredLogger) *ExecRunner {
	return &ExecRunner{
		log:    log,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command, interprets a non-zero exit as failure, and on
// success streams the captured output through to the operator. State dumps
// and deploy receipts arrive this way.
func (r *ExecRunner) Run(c Command) error {
	cmd := exec.Command(c.Bin, c.Args...) // #nosec G204
	r.log.Infow("running", "op", c.Op, "account", c.Account, "command", c.Redacted())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.log.Errorw("command failed",
			"op", c.Op,
			"account", c.Account,
			"error", err,
			"stdout", stdout.String(),
			"stderr", stderr.String())
		return &ExternalCommandError{Op: c.Op, Account: c.Account, Err: err}
	}

	if stdout.Len() > 0 {
		_, _ = io.Copy(r.Stdout, &stdout)
	}
	if stderr.Len() > 0 {
		_, _ = io.Copy(r.Stderr, &stderr)
	}
	return nil
}

// RunInteractive executes the command with the parent's stdio attached, for
// flows that prompt the operator (wallet login).
func (r *ExecRunner) RunInteractive(c Command) error {
	cmd := exec.Command(c.Bin, c.Args...) // #nosec G204
	r.log.Infow("running", "op", c.Op, "command", c.Redacted())

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &ExternalCommandError{Op: c.Op, Account: c.Account, Err: err}
	}
	return nil
}
