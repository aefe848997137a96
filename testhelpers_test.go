package simplecli

import (
	"bytes"
	"testing"
)

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := new(bytes.Buffer)
	Logger.SetOutput(buf)
	return func() {
		if t.Failed() && buf.Len() > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// setupTestWriter - Redirects Writer to a buffer until the test finishes.
func setupTestWriter(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	w := Writer
	Writer = buf
	t.Cleanup(func() { Writer = w })
	return buf
}

func argument1() *Argument {
	return NewArgument("argument1", KeyAndValue, Alias("A"), Default("yes"))
}
