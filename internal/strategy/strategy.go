package strategy

import (
	"fmt"
	"sort"
	"strings"

	"straddle-backtest/internal/config"
	"straddle-backtest/internal/model"
)

// Params are the market knobs shared by every preset. All legs of one run
// get the same values, so they see the same simulated price path.
type Params struct {
	Days         int
	InitialPrice float64
	Volatility   float64
	VRP          float64
	Seed         uint64
}

// DefaultParams matches what the UI sends when fields are left blank.
func DefaultParams() Params {
	return Params{
		Days:         30,
		InitialPrice: 75.0,
		Volatility:   0.30,
		VRP:          0.05,
		Seed:         42,
	}
}

func (p Params) Validate() error {
	if p.Days <= 0 {
		return fmt.Errorf("days must be > 0")
	}
	if p.InitialPrice <= 0 {
		return fmt.Errorf("initial_price must be > 0")
	}
	if p.Volatility < 0 {
		return fmt.Errorf("volatility must be >= 0")
	}
	return nil
}

// LegSpec is one simulator invocation of a preset.
type LegSpec struct {
	Leg    model.Leg
	Config config.Simulator
}

// Strategy builds the simulator runs for a named preset.
type Strategy interface {
	Name() string
	Description() string
	Legs(p Params) []LegSpec
}

var registry = map[string]Strategy{}

func register(s Strategy) {
	registry[s.Name()] = s
}

// Lookup returns the preset registered under name (case-insensitive).
func Lookup(name string) (Strategy, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
	return s, nil
}

// All returns every registered preset sorted by name.
func All() []Strategy {
	out := make([]Strategy, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func baseConfig(p Params) config.Simulator {
	return config.Simulator{
		Simulation: config.SimulationConfig{
			Days:                  p.Days,
			InitialPrice:          p.InitialPrice,
			Drift:                 0.0,
			Volatility:            p.Volatility,
			VolatilityRiskPremium: p.VRP,
			Seed:                  p.Seed,
			RiskFreeRate:          0.05,
			ContractMultiplier:    1000,
		},
		Strategy: config.StrategyConfig{
			StrategyType: "straddle",
			EntryTime:    "15:00",
			RollTime:     "14:00",
		},
		StrikeConfig: config.StrikeConfig{
			TickSize: 0.25,
			RollType: "recenter",
		},
	}
}
