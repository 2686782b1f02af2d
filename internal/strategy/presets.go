package strategy

import (
	"straddle-backtest/internal/config"
	"straddle-backtest/internal/model"
)

const (
	NameStraddle       = "straddle"
	NameLongProtection = "long_protection"
	NameCombined       = "combined"
)

func init() {
	register(straddle{})
	register(longProtection{})
	register(combined{})
}

// shortStraddleConfig sells a 1DTE ATM straddle and rolls it at roll_time on expiry day.
func shortStraddleConfig(p Params) config.Simulator {
	c := baseConfig(p)
	c.Strategy.EntryDTE = 1
	c.Strategy.StrikeSelection = "ATM"
	c.Strategy.Side = "short"
	c.Strategy.RollTriggers = []config.RollTrigger{
		{TriggerType: "time", Value: 14.0, Legs: "both"},
	}
	return c
}

// longProtectionConfig buys a 70DTE OTM straddle three points either side of ATM
// and rolls it at 28 DTE or a 14% profit.
func longProtectionConfig(p Params) config.Simulator {
	c := baseConfig(p)
	c.Strategy.EntryDTE = 70
	c.Strategy.StrikeSelection = "OTM"
	c.Strategy.StrikeOffset = 3.0
	c.Strategy.Side = "long"
	c.Strategy.RollTriggers = []config.RollTrigger{
		{TriggerType: "dte", Value: 28.0, Legs: "both"},
		{TriggerType: "profit_target", Value: 0.14, Legs: "both"},
	}
	return c
}

type straddle struct{}

func (straddle) Name() string { return NameStraddle }

func (straddle) Description() string {
	return "Short 1DTE ATM straddle, opened at 15:00 and rolled at 14:00 on expiration day."
}

func (straddle) Legs(p Params) []LegSpec {
	return []LegSpec{{Leg: model.LegNone, Config: shortStraddleConfig(p)}}
}

type longProtection struct{}

func (longProtection) Name() string { return NameLongProtection }

func (longProtection) Description() string {
	return "Long 70DTE OTM straddle (ATM +/- 3.00), rolled at 28 DTE or a 14% profit target."
}

// Tagged long so opening premiums are shown as cash paid.
func (longProtection) Legs(p Params) []LegSpec {
	return []LegSpec{{Leg: model.LegLong, Config: longProtectionConfig(p)}}
}

type combined struct{}

func (combined) Name() string { return NameCombined }

func (combined) Description() string {
	return "Short 1DTE straddle income leg plus long 70DTE protection leg on the same price path."
}

// Short first: legs run in this order.
func (combined) Legs(p Params) []LegSpec {
	return []LegSpec{
		{Leg: model.LegShort, Config: shortStraddleConfig(p)},
		{Leg: model.LegLong, Config: longProtectionConfig(p)},
	}
}
