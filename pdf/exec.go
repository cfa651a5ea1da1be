package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrTimeout reports that an external tool exceeded its time budget.
	ErrTimeout = errors.New("external tool timed out")
	// ErrEmptyOutput reports that an external tool exited cleanly but
	// produced no output.
	ErrEmptyOutput = errors.New("external tool produced no output")
)

const maxStderrLen = 200

// run executes an external tool with the per-invocation timeout, holding a
// semaphore slot for the duration. On failure the tool's stderr is folded
// into the returned error.
func (s *Service) run(ctx context.Context, bin string, args ...string) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("wait for process slot: %w", err)
	}
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %s after %v", ErrTimeout, bin, s.Timeout)
	}
	if err != nil {
		return fmt.Errorf("%s: %v: %s", bin, err, truncate(stderr.String(), maxStderrLen))
	}
	return nil
}

// runPipe is like run but feeds stdin to the tool and returns its stdout.
func (s *Service) runPipe(ctx context.Context, stdin []byte, bin string, args ...string) ([]byte, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("wait for process slot: %w", err)
	}
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%w: %s after %v", ErrTimeout, bin, s.Timeout)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %s", bin, err, truncate(stderr.String(), maxStderrLen))
	}
	return stdout.Bytes(), nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
