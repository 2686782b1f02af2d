package simulator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"straddle-backtest/internal/config"
	"straddle-backtest/internal/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-simulator")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func simConfig(side string) *config.Simulator {
	return &config.Simulator{
		Simulation: config.SimulationConfig{Days: 5, InitialPrice: 75, Volatility: 0.3, Seed: 42, ContractMultiplier: 1000},
		Strategy:   config.StrategyConfig{StrategyType: "straddle", EntryDTE: 1, Side: side},
		StrikeConfig: config.StrikeConfig{
			TickSize: 0.25,
			RollType: "recenter",
		},
	}
}

func TestRunPassesRenderedConfig(t *testing.T) {
	bin := fakeBinary(t, `
grep -q 'side: long' "$1" || exit 3
echo "config=$1"
echo 'Day 0 (Mon W0): Price $62.00 | OPENED position 1 at 15:00 | $6.13 per barrel ($6131 total)'
echo 'Total positions opened: 1'
`)
	workDir := t.TempDir()
	r := NewRunner(bin, workDir, 0, zap.NewNop())

	out, err := r.Run(context.Background(), simConfig("long"))
	require.NoError(t, err)
	assert.Contains(t, out, "OPENED position 1")
	assert.Contains(t, out, "Total positions opened: 1")

	first := strings.SplitN(out, "\n", 2)[0]
	cfgPath := strings.TrimPrefix(first, "config=")
	assert.Equal(t, workDir, filepath.Dir(cfgPath))
	_, statErr := os.Stat(cfgPath)
	assert.True(t, os.IsNotExist(statErr), "config file is removed after the run")
}

func TestRunNonZeroExitKeepsStdout(t *testing.T) {
	bin := fakeBinary(t, `
echo 'Total positions opened: 2'
echo 'boom' >&2
exit 1
`)
	r := NewRunner(bin, t.TempDir(), 0, nil)

	out, err := r.Run(context.Background(), simConfig("short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, out, "Total positions opened: 2")
}

func TestRunMissingBinary(t *testing.T) {
	r := NewRunner(filepath.Join(t.TempDir(), "does-not-exist"), "", 0, nil)

	out, err := r.Run(context.Background(), simConfig("short"))
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestRunTimeout(t *testing.T) {
	bin := fakeBinary(t, "exec sleep 5\n")
	r := NewRunner(bin, t.TempDir(), 100*time.Millisecond, nil)

	start := time.Now()
	_, err := r.Run(context.Background(), simConfig("short"))
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestStderrSuffix(t *testing.T) {
	assert.Equal(t, "", stderrSuffix("  \n"))
	assert.Equal(t, ": bad config", stderrSuffix("bad config\n"))
	assert.Len(t, stderrSuffix(strings.Repeat("x", 2000)), 514)
}

func TestRunWithTracing(t *testing.T) {
	require.NoError(t, trace.Init(true))
	t.Cleanup(func() {
		require.NoError(t, trace.Shutdown(context.Background()))
		require.NoError(t, trace.Init(false))
	})

	bin := fakeBinary(t, "echo 'Total positions opened: 1'\n")
	out, err := NewRunner(bin, t.TempDir(), 0, nil).Run(context.Background(), simConfig("short"))
	require.NoError(t, err)
	assert.Contains(t, out, "Total positions opened: 1")
}
