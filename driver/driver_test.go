package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafestim/ergmee/config"
)

func writeFixture(t *testing.T, dir string) (cfgPath string) {
	t.Helper()
	netPath := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(netPath, []byte("*Vertices 8\n*Arcs\n1 2\n2 3\n3 4\n4 1\n5 6\n6 7\n"), 0o644))

	cfgPath = filepath.Join(dir, "config.txt")
	content := "arclist_filename = " + netPath + "\n" +
		"theta_file_prefix = " + dir + "/theta\n" +
		"dzA_file_prefix = " + dir + "/dza\n" +
		"sim_net_file_prefix = " + dir + "/sim\n" +
		"structParams = Arc\n" +
		"structParams = Reciprocity\n" +
		"Ssteps = 3\n" +
		"EEsteps = 2\n" +
		"EEinnerSteps = 2\n" +
		"samplerSteps = 20\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath
}

func TestRunEstimationEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir)

	require.NoError(t, RunEstimation(cfgPath, 0))

	thetaOut, err := os.ReadFile(filepath.Join(dir, "theta_0.txt"))
	require.NoError(t, err)
	assert.NotEmpty(t, thetaOut, "expected non-empty theta trajectory file")

	dzaOut, err := os.ReadFile(filepath.Join(dir, "dza_0.txt"))
	require.NoError(t, err)
	assert.NotEmpty(t, dzaOut, "expected non-empty dzA trajectory file")
}

func TestRunEstimationWritesFinalNetworkWhenRequested(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir)

	f, err := os.OpenFile(cfgPath, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("outputSimulatedNetwork = true\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, RunEstimation(cfgPath, 0))

	netOut, err := os.ReadFile(filepath.Join(dir, "sim0.txt"))
	require.NoError(t, err)
	assert.NotEmpty(t, netOut, "expected non-empty final network file")
}

func TestRunSimulationEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir)

	require.NoError(t, RunSimulation(cfgPath, 0, []float64{-1.0, 0.5}))

	stats, err := os.ReadFile(filepath.Join(dir, "sim0_stats.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, stats, "expected non-empty simulation stats file")
}

func TestRunSimulationRejectsThetaArityMismatch(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir)

	assert.Error(t, RunSimulation(cfgPath, 0, []float64{1}), "expected error for theta/registry arity mismatch")
}

func TestRunEstimationRejectsMissingConfig(t *testing.T) {
	assert.Error(t, RunEstimation(filepath.Join(t.TempDir(), "missing.txt"), 0), "expected error for missing config file")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, exitUnknownError, ExitCode(&TaskError{Task: 1, Err: errors.New("boom")}))
	assert.Equal(t, exitConfigError, ExitCode(&TaskError{Task: 1, Err: &config.ConfigError{Msg: "bad"}}))
}
