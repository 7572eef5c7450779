package util

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressCounts(t *testing.T) {
	p := NewProgress(3)
	p.JobDone(nil)
	p.JobDone(errors.New("bad structure"))
	p.JobDone(nil)

	processed, skipped := p.Close()
	require.Equal(t, 2, processed)
	require.Equal(t, 1, skipped)
}

func TestProgressEmptyBatch(t *testing.T) {
	p := NewProgress(0)
	processed, skipped := p.Close()
	require.Equal(t, 0, processed)
	require.Equal(t, 0, skipped)
}

// TestProgressZeroTotalOutput feeds a job to a zero-total progress and
// checks the verbose line never degenerates into a NaN percentage.
func TestProgressZeroTotalOutput(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	FlagVerbose = true
	defer func() { FlagVerbose = false }()

	p := NewProgress(0)
	p.JobDone(nil)
	p.Close()

	require.NotContains(t, buf.String(), "NaN")
}
