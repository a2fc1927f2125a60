// Package executor runs external commands with bounded execution time.
package executor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=executor.go -destination=mocks/executor.gen.go -package=mocks

// DefaultTimeout bounds commands that do not request an explicit timeout.
const DefaultTimeout = 30 * time.Second

// Executor interface provides external command execution capabilities.
type Executor interface {
	// Run executes the command and returns its standard output.
	Run(params RunParams) (string, error)

	// RunStreaming executes the command, forwarding every output line to
	// onLine as it arrives, and returns the accumulated combined output.
	RunStreaming(params RunParams, onLine func(line string)) (string, error)
}

// RunParams contains parameters for a single command execution.
type RunParams struct {
	Command string
	Args    []string
	Dir     string
	Timeout time.Duration // zero means DefaultTimeout
}

type realExecutor struct{}

// NewExecutor creates a new Executor instance.
func NewExecutor() Executor {
	return &realExecutor{}
}

// Run executes the command and returns its standard output.
func (e *realExecutor) Run(params RunParams) (string, error) {
	timeout := effectiveTimeout(params.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, params.Command, params.Args...)
	cmd.Dir = params.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		combined := combineOutput(stdout.String(), stderr.String())
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s (command: %s, output: %s)",
				ErrTimeout, timeout, commandLine(params), combined)
		}
		return "", fmt.Errorf("command failed: %w (command: %s, output: %s)",
			err, commandLine(params), combined)
	}

	return stdout.String(), nil
}

// RunStreaming executes the command, forwarding every output line to onLine
// as it arrives, and returns the accumulated combined output.
func (e *realExecutor) RunStreaming(params RunParams, onLine func(line string)) (string, error) {
	timeout := effectiveTimeout(params.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, params.Command, params.Args...)
	cmd.Dir = params.Dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start command: %w (command: %s)", err, commandLine(params))
	}

	var mu sync.Mutex
	var combined strings.Builder
	record := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		combined.WriteString(line)
		combined.WriteByte('\n')
		if onLine != nil {
			onLine(line)
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdoutPipe)
		for scanner.Scan() {
			record(scanner.Text())
		}
	}()
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stderrPipe)
		for scanner.Scan() {
			record(scanner.Text())
		}
	}()

	// Pipes must be drained before Wait closes them.
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		output := strings.TrimSpace(combined.String())
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s (command: %s, output: %s)",
				ErrTimeout, timeout, commandLine(params), output)
		}
		return "", fmt.Errorf("command failed: %w (command: %s, output: %s)",
			err, commandLine(params), output)
	}

	return combined.String(), nil
}

func effectiveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

func commandLine(params RunParams) string {
	if len(params.Args) == 0 {
		return params.Command
	}
	return params.Command + " " + strings.Join(params.Args, " ")
}

func combineOutput(stdout, stderr string) string {
	stdout = strings.TrimSpace(stdout)
	stderr = strings.TrimSpace(stderr)
	switch {
	case stdout == "":
		return stderr
	case stderr == "":
		return stdout
	default:
		return stdout + "\n" + stderr
	}
}
