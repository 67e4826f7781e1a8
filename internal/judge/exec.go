// Package judge provides built-in judges: file checks, command checks, and
// agent-graded checks.
package judge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
)

// execResult captures a completed command invocation.
type execResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCommand runs a command to completion in workDir, killing the whole
// process group if ctx is canceled. The caller gets captured output and
// the exit code; a non-zero exit is not an error here.
func runCommand(ctx context.Context, command string, args []string, stdin io.Reader, workDir string) (execResult, error) {
	if ctx.Err() != nil {
		return execResult{}, ctx.Err()
	}

	// #nosec G204 - command and args come from jury configuration, not
	// from the judged workspace.
	cmd := exec.CommandContext(ctx, command, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	if workDir != "" {
		cmd.Dir = workDir
	}

	// Set process group so cancellation kills child processes too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return execResult{}, fmt.Errorf("failed to start %s: %w", command, err)
	}

	waitDone := make(chan error, 1)
	go func() {
		waitDone <- cmd.Wait()
	}()

	var waitErr error
	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		<-waitDone // reap
		return execResult{}, ctx.Err()
	case waitErr = <-waitDone:
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return execResult{}, fmt.Errorf("%s: %w", command, waitErr)
		}
	}

	return execResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}
