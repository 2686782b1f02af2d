package backtest

import (
	"context"
	"fmt"

	"straddle-backtest/internal/analysis"
	"straddle-backtest/internal/config"
	"straddle-backtest/internal/extract"
	"straddle-backtest/internal/model"
	"straddle-backtest/internal/strategy"
	"straddle-backtest/internal/trace"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Simulator produces the text output of one simulator run.
type Simulator interface {
	Run(ctx context.Context, cfg *config.Simulator) (string, error)
}

type Engine struct {
	sim Simulator
	log *zap.Logger
}

func New(sim Simulator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{sim: sim, log: log}
}

// Options tune a single Run.
type Options struct {
	// MaxTrades caps the trades returned with the result (0 = all).
	// Aggregates are always computed over every trade.
	MaxTrades int
}

// ParseOutput extracts and summarizes one leg's simulator output.
func ParseOutput(output string, leg model.Leg, horizonDays int) model.LegResult {
	trades := extract.Extract(output, leg)
	return analysis.Summarize(leg, trades, analysis.ParseFooter(output), horizonDays)
}

// RunLeg runs the simulator for one leg and summarizes its output. When the
// simulator fails the returned result is built from whatever it printed
// (often nothing) and the error is returned alongside it.
func (e *Engine) RunLeg(ctx context.Context, spec strategy.LegSpec) (model.LegResult, error) {
	ctx, span := trace.StartSpan(ctx, "backtest.run_leg")
	defer span.End()
	if trace.Enabled() {
		span.SetAttributes(
			attribute.String("leg", string(spec.Leg)),
			attribute.String("side", spec.Config.Strategy.Side),
		)
	}

	cfg := spec.Config
	output, err := e.sim.Run(ctx, &cfg)
	res := ParseOutput(output, spec.Leg, cfg.Simulation.Days)
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

// Run executes every leg of a preset in order, each one to completion before
// the next starts, and combines them when the preset has two legs.
func (e *Engine) Run(ctx context.Context, strat strategy.Strategy, p strategy.Params, opts Options) (*Result, error) {
	if e.sim == nil {
		return nil, fmt.Errorf("simulator is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	specs := strat.Legs(p)
	if len(specs) == 0 {
		return nil, fmt.Errorf("strategy %q has no legs", strat.Name())
	}

	res := &Result{
		ID:       uuid.NewString(),
		Strategy: strat.Name(),
		Legs:     make([]model.LegResult, 0, len(specs)),
	}
	log := e.log.With(zap.String("run_id", res.ID), zap.String("strategy", res.Strategy))

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		leg, err := e.RunLeg(ctx, spec)
		if err != nil {
			log.Warn("simulator run failed, using partial output",
				zap.String("leg", string(spec.Leg)),
				zap.Error(err),
			)
			res.Degraded = true
		}
		log.Info("leg summarized",
			zap.String("leg", string(spec.Leg)),
			zap.Int("trades", len(leg.Trades)),
			zap.Int("positions", leg.PositionCount),
			zap.String("net_pnl", leg.NetPnL.String()),
		)
		res.Legs = append(res.Legs, leg)
	}

	if len(res.Legs) == 2 {
		m := analysis.Combine(res.Legs[0], res.Legs[1])
		res.Combined = &m
		res.Trades = analysis.MergeTrades(res.Legs[0].Trades, res.Legs[1].Trades)
	} else {
		res.Trades = res.Legs[0].Trades
	}
	if opts.MaxTrades > 0 && len(res.Trades) > opts.MaxTrades {
		res.Trades = res.Trades[:opts.MaxTrades]
	}
	return res, nil
}
