package trajectory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafestim/ergmee/trajectory"
)

func TestWriterHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := trajectory.NewIOWriter(&buf, []string{"Arc", "Reciprocity"})

	require.NoError(t, w.WriteRow(0, []float64{0.1, -0.2}))
	require.NoError(t, w.WriteRow(1, []float64{0.15, -0.25}))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "expected header + 2 rows, got %q", buf.String())
	assert.Equal(t, "t\tArc\tReciprocity", lines[0])
}

func TestWriterRejectsWrongArity(t *testing.T) {
	var buf bytes.Buffer
	w := trajectory.NewIOWriter(&buf, []string{"Arc"})
	assert.Error(t, w.WriteRow(0, []float64{1, 2}))
}

func TestWriterDeterministicAcrossRuns(t *testing.T) {
	run := func() string {
		var buf bytes.Buffer
		w := trajectory.NewIOWriter(&buf, []string{"Arc"})
		for i := 0; i < 5; i++ {
			_ = w.WriteRow(i, []float64{float64(i) * 0.1})
		}
		_ = w.Close()
		return buf.String()
	}
	assert.Equal(t, run(), run())
}
