// Package e2e provides testing infrastructure for end-to-end CLI tests.
// It includes a test harness for running taskgen commands, fixture management,
// and utilities for setting up isolated test environments.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/klauern/taskgen/internal/cli"
)

// envOverrides are the environment variables taskgen reads. The harness
// clears them so the developer's shell cannot change test outcomes.
var envOverrides = []string{
	"TASKGEN_SOURCE_PATH",
	"TASKGEN_SOURCE_SUFFIX",
	"TASKGEN_STUBS_PROJECT_ROOT",
	"TASKGEN_OUTPUT_COLOR",
	"TASKGEN_OUTPUT_VERBOSE",
}

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness provides a test harness for running E2E CLI tests.
// It manages environment isolation, the working directory and output capture.
type Harness struct {
	t          *testing.T
	homeDir    string
	projectDir string
}

// NewHarness creates a new E2E test harness.
// HOME points at a fresh temp directory and the process works inside a
// separate, empty project directory for the rest of the test.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{
		t:          t,
		homeDir:    t.TempDir(),
		projectDir: t.TempDir(),
	}

	t.Setenv("HOME", h.homeDir)
	for _, key := range envOverrides {
		t.Setenv(key, "")
	}
	t.Chdir(h.projectDir)

	return h
}

// SetEnv sets an environment variable for CLI commands run through this harness.
// The environment will be restored after the test completes.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory for this test harness.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// ProjectDir returns the working directory commands run in.
func (h *Harness) ProjectDir() string {
	return h.projectDir
}

// Run executes a CLI command with the given arguments and captures the output.
// Stdin is empty, so any prompt receives end of input.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()
	return h.RunWithStdin("", args...)
}

// RunWithStdin executes a CLI command with stdin input and captures output.
// This is useful for answering the destination prompt.
func (h *Harness) RunWithStdin(stdin string, args ...string) *Result {
	h.t.Helper()

	// Prepend "taskgen" as the program name if not provided
	if len(args) == 0 || args[0] != "taskgen" {
		args = append([]string{"taskgen"}, args...)
	}

	oldStdin := os.Stdin
	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdin pipe: %v", err)
	}
	go func() {
		defer func() {
			_ = stdinW.Close()
		}()
		_, _ = stdinW.WriteString(stdin)
	}()
	os.Stdin = stdinR

	oldStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	// Read stdout concurrently so a large preview cannot fill the pipe
	// buffer and block the command.
	var stdoutBuf bytes.Buffer
	var copyErr error
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		_, copyErr = io.Copy(&stdoutBuf, stdoutR)
	}()

	cmdErr := cli.Run(context.Background(), args)

	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	os.Stdin = oldStdin
	os.Stdout = oldStdout
	_ = stdinR.Close()

	<-copyDone
	if copyErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", copyErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
