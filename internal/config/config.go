package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Simulator is the on-disk configuration shape (YAML) the external
// simulator binary reads as its only argument.
type Simulator struct {
	Simulation   SimulationConfig `yaml:"simulation"`
	Strategy     StrategyConfig   `yaml:"strategy"`
	StrikeConfig StrikeConfig     `yaml:"strike_config"`
}

type SimulationConfig struct {
	Days                  int     `yaml:"days"`
	InitialPrice          float64 `yaml:"initial_price"`
	Drift                 float64 `yaml:"drift"`
	Volatility            float64 `yaml:"volatility"`
	VolatilityRiskPremium float64 `yaml:"volatility_risk_premium"`
	Seed                  uint64  `yaml:"seed"`
	RiskFreeRate          float64 `yaml:"risk_free_rate"`
	ContractMultiplier    float64 `yaml:"contract_multiplier"`
}

type StrategyConfig struct {
	StrategyType    string        `yaml:"strategy_type"`
	EntryDTE        int           `yaml:"entry_dte"`
	EntryTime       string        `yaml:"entry_time"`
	RollTime        string        `yaml:"roll_time"`
	StrikeSelection string        `yaml:"strike_selection"`
	StrikeOffset    float64       `yaml:"strike_offset,omitempty"`
	Side            string        `yaml:"side"`
	RollTriggers    []RollTrigger `yaml:"roll_triggers,omitempty"`
}

// RollTrigger mirrors one entry of strategy.roll_triggers.
// TriggerType is one of "time", "dte", "profit_target", "stop_loss".
type RollTrigger struct {
	TriggerType string  `yaml:"trigger_type"`
	Value       float64 `yaml:"value"`
	Legs        string  `yaml:"legs"`
}

type StrikeConfig struct {
	TickSize float64 `yaml:"tick_size"`
	// RollType is "recenter" (back to ATM) or "same_strikes".
	RollType string `yaml:"roll_type"`
}

// Load reads and validates a simulator config file.
func Load(path string) (*Simulator, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a config but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Simulator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Simulator
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Simulator) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	s := c.Simulation
	if s.Days <= 0 {
		return errors.New("simulation.days must be > 0")
	}
	if s.InitialPrice <= 0 {
		return errors.New("simulation.initial_price must be > 0")
	}
	if s.Volatility < 0 {
		return errors.New("simulation.volatility must be >= 0")
	}
	if s.ContractMultiplier <= 0 {
		return errors.New("simulation.contract_multiplier must be > 0")
	}
	if c.Strategy.EntryDTE <= 0 {
		return errors.New("strategy.entry_dte must be > 0")
	}
	switch strings.ToLower(c.Strategy.Side) {
	case "short", "long":
	default:
		return fmt.Errorf("strategy.side must be short or long, got %q", c.Strategy.Side)
	}
	if c.StrikeConfig.TickSize <= 0 {
		return errors.New("strike_config.tick_size must be > 0")
	}
	return nil
}

// IsLong reports whether the configured strategy buys premium.
func (c *Simulator) IsLong() bool {
	return strings.EqualFold(c.Strategy.Side, "long")
}

// Render encodes the config as the YAML document the simulator expects.
func (c *Simulator) Render() ([]byte, error) {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("render simulator config: %w", err)
	}
	return raw, nil
}
