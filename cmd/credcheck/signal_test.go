//go:build unix

package main_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startBlocked starts credcheck on a project whose last agent credential is a
// named pipe, and returns once credcheck is blocked reading it. The returned
// writer releases the read.
func startBlocked(t *testing.T) (*exec.Cmd, *bytes.Buffer, *os.File) {
	t.Helper()
	dir := fixtureProject(t)
	fifo := filepath.Join(dir, "examples/agent/v1/zz-pending.json")
	require.NoError(t, syscall.Mkfifo(fifo, 0o644))

	out := &bytes.Buffer{}
	cmd := exec.Command(binaryPath)
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = out
	require.NoError(t, cmd.Start())
	t.Cleanup(func() { _ = cmd.Process.Kill() })

	var w *os.File
	require.Eventually(t, func() bool {
		f, err := os.OpenFile(fifo, os.O_WRONLY|syscall.O_NONBLOCK, 0)
		if err != nil {
			return false
		}
		w = f
		return true
	}, 10*time.Second, 10*time.Millisecond, "credcheck never opened %s", fifo)
	t.Cleanup(func() { _ = w.Close() })

	return cmd, out, w
}

func waitExit(t *testing.T, cmd *exec.Cmd) *exec.ExitError {
	t.Helper()
	err := cmd.Wait()
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "credcheck should fail, got %v", err)
	return exitErr
}

func TestE2E_InterruptExits130(t *testing.T) {
	cmd, out, w := startBlocked(t)

	require.NoError(t, cmd.Process.Signal(os.Interrupt))
	time.Sleep(200 * time.Millisecond)
	_, err := w.WriteString(`{"id":"pending"}`)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	exitErr := waitExit(t, cmd)
	assert.Equal(t, 130, exitErr.ExitCode(), out.String())
	assert.Contains(t, out.String(), "Validation interrupted by user")
	assert.NotContains(t, out.String(), "Developer Credentials", "no sweep starts after the interrupt")
	assert.NotContains(t, out.String(), "Validation Summary")
}

func TestE2E_SecondInterruptKillsProcess(t *testing.T) {
	cmd, out, _ := startBlocked(t)

	require.NoError(t, cmd.Process.Signal(os.Interrupt))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, cmd.Process.Signal(os.Interrupt))

	exitErr := waitExit(t, cmd)
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	assert.True(t, status.Signaled(), "credcheck should die from the signal: %s", out.String())
	assert.Equal(t, syscall.SIGINT, status.Signal())
}
