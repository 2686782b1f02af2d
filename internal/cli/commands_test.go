package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"straddle-backtest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const longOutput = `Day 0 (Mon W0): Price $75.00 | OPENED position 1 at 15:00 | Strikes: Put $72.00 Call $78.00 | $6.13 per barrel ($6131 total)
Day 5 (Mon W1): Price $78.10 | CLOSED position 1 at 14:00 | P&L: $1,500 (Profit target)
Total positions opened: 1
Final underlying price: $78.10
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "long.log")
	require.NoError(t, os.WriteFile(logPath, []byte(longOutput), 0o644))
	csvPath := filepath.Join(dir, "out", "trades.csv")

	out, err := execute(t, "", "parse", logPath, "--leg", "long", "--days", "10", "--csv", csvPath)
	require.NoError(t, err)

	assert.Contains(t, out, "long     net=$1500.00 positions=1 win_rate=100.0% per_day=$150.00 final_price=$78.10")
	assert.Contains(t, out, "[LONG] Day 0")
	assert.Contains(t, out, "$-6.13 per barrel")
	assert.Contains(t, out, "Wrote 2 trades to "+csvPath)
	assert.FileExists(t, csvPath)
}

func TestParseCommandStdin(t *testing.T) {
	out, err := execute(t, longOutput, "parse", "-", "--n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "output   net=$1500.00")
	assert.Contains(t, out, "... 1 more")
}

func TestParseCommandRejectsBadLeg(t *testing.T) {
	_, err := execute(t, "", "parse", "-", "--leg", "both")
	assert.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "", "config", "--strategy", "combined", "--days", "12")
	require.NoError(t, err)

	docs := strings.Split(out, "---\n")
	require.Len(t, docs, 2)

	var short, long config.Simulator
	require.NoError(t, yaml.Unmarshal([]byte(docs[0]), &short))
	require.NoError(t, yaml.Unmarshal([]byte(docs[1]), &long))
	assert.Equal(t, "short", short.Strategy.Side)
	assert.Equal(t, "long", long.Strategy.Side)
	assert.Equal(t, 12, short.Simulation.Days)
	assert.Equal(t, 12, long.Simulation.Days)
	assert.NoError(t, long.Validate())
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "", "config", "--strategy", "long_protection")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "long.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	out, err = execute(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (long straddle, 30 days, entry 70DTE)")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("simulation:\n  days: 0\n"), 0o644))
	_, err = execute(t, "", "validate", bad)
	assert.Error(t, err)
}

func TestRunCommandRejectsUnknownStrategy(t *testing.T) {
	_, err := execute(t, "", "run", "--strategy", "butterfly")
	assert.Error(t, err)
}
