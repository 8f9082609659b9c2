// File: cmd/scalpel-geometry/main_test.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetMocks() {
	osWriteFile = os.WriteFile
	osExit = os.Exit
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 0, exitCode(fmt.Errorf("run: %w", context.Canceled)))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}

func TestHandlePanic(t *testing.T) {
	defer resetMocks()

	var (
		exitStatus = -1
		written    []byte
		path       string
	)
	osExit = func(code int) { exitStatus = code }

	t.Run("Writes the panic log", func(t *testing.T) {
		osWriteFile = func(name string, data []byte, _ os.FileMode) error {
			path, written = name, data
			return nil
		}
		func() {
			defer handlePanic()
			panic("layout exploded")
		}()

		assert.Equal(t, 2, exitStatus)
		assert.Equal(t, panicLogFile, path)
		require.NotEmpty(t, written)
		assert.Contains(t, string(written), "panic: layout exploded")
	})

	t.Run("Write failure still exits", func(t *testing.T) {
		exitStatus = -1
		osWriteFile = func(string, []byte, os.FileMode) error { return errors.New("read-only") }
		func() {
			defer handlePanic()
			panic("again")
		}()
		assert.Equal(t, 2, exitStatus)
	})

	t.Run("No panic", func(t *testing.T) {
		exitStatus = -1
		func() { defer handlePanic() }()
		assert.Equal(t, -1, exitStatus)
	})
}
