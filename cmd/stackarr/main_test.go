package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goose-lang/stackarr"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, stackarr.Function)
	assert.Equal(t, 0, code)
	assert.Equal(t, "val1: 69\nval2: 420\nstackArr sum: 489\n", stdout.String())
	assert.Empty(t, stderr.String())
}

// swapped builds the pointer array in reverse order; the cells change but the
// sum does not.
func swapped() (stackarr.Cells, int32) {
	var cells stackarr.Cells
	stackarr.Coerce(&[2]*int32{&cells.Val2, &cells.Val1})
	return cells, cells.Sum()
}

func TestRunSwapped(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, swapped)
	assert.Equal(t, 0, code)
	assert.Equal(t, "val1: 420\nval2: 69\nstackArr sum: 489\n", stdout.String())
}

func TestRunFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(&stdout, &stderr, func() (stackarr.Cells, int32) {
		return stackarr.Cells{}, 0
	})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String(), "nothing is reported after a failed check")
	assert.Contains(t, stderr.String(), "assertion failed")
	assert.Contains(t, stderr.String(), "fixture failed")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRunWriteError(t *testing.T) {
	var stderr bytes.Buffer
	code := run(failWriter{}, &stderr, stackarr.Function)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "could not write output")
}
