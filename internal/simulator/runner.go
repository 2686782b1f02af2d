// Package simulator invokes the external options simulator binary.
package simulator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"straddle-backtest/internal/config"
	"straddle-backtest/internal/trace"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Runner executes the simulator once per call: the config is written to a
// fresh YAML file in WorkDir, passed as the only argument, and removed
// afterwards. Calls block until the process exits.
type Runner struct {
	Bin     string
	WorkDir string
	// Timeout bounds a single run; zero means wait for the process.
	Timeout time.Duration

	log *zap.Logger
}

func NewRunner(bin, workDir string, timeout time.Duration, log *zap.Logger) *Runner {
	if workDir == "" {
		workDir = os.TempDir()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Bin: bin, WorkDir: workDir, Timeout: timeout, log: log}
}

// Run returns whatever the simulator printed on stdout. A non-zero exit
// still returns the captured stdout alongside the error, so callers can
// salvage partial output.
func (r *Runner) Run(ctx context.Context, cfg *config.Simulator) (string, error) {
	raw, err := cfg.Render()
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.WorkDir, "sim_config_"+uuid.NewString()+".yaml")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", fmt.Errorf("write simulator config: %w", err)
	}
	defer os.Remove(path)

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	ctx, span := trace.StartSpan(ctx, "simulator.run")
	defer span.End()
	if trace.Enabled() {
		span.SetAttributes(
			attribute.String("simulator.bin", r.Bin),
			attribute.String("simulator.side", cfg.Strategy.Side),
			attribute.Int("simulator.days", cfg.Simulation.Days),
			attribute.Int64("simulator.seed", int64(cfg.Simulation.Seed)),
		)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Bin, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	r.log.Debug("simulator finished",
		zap.String("bin", r.Bin),
		zap.String("config", path),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("stdout_bytes", stdout.Len()),
		zap.Error(err),
	)
	if trace.Enabled() {
		span.SetAttributes(attribute.Int("simulator.stdout_bytes", stdout.Len()))
	}
	if err != nil {
		span.RecordError(err)
		return stdout.String(), fmt.Errorf("simulator %s: %w%s", r.Bin, err, stderrSuffix(stderr.String()))
	}
	return stdout.String(), nil
}

func stderrSuffix(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	const maxLen = 512
	if len(s) > maxLen {
		s = s[len(s)-maxLen:]
	}
	return ": " + s
}
