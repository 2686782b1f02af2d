package models

import (
	"fmt"

	"straddle-backtest/internal/strategy"
)

// SimRequest is the body of POST /run and POST /api/v1/run. Every field is
// optional; missing fields fall back to the preset defaults.
type SimRequest struct {
	Days         *int     `json:"days,omitempty"`
	InitialPrice *float64 `json:"initial_price,omitempty"`
	Volatility   *float64 `json:"volatility,omitempty"`
	VRP          *float64 `json:"vrp,omitempty"`
	Seed         *uint64  `json:"seed,omitempty"`
	Strategy     string   `json:"strategy,omitempty"`   // default: "straddle"
	MaxTrades    *int     `json:"max_trades,omitempty"` // 0 = server default
}

// StrategyName returns the requested preset, defaulting to the short straddle.
func (r SimRequest) StrategyName() string {
	if r.Strategy == "" {
		return strategy.NameStraddle
	}
	return r.Strategy
}

// Params merges the request over strategy.DefaultParams.
func (r SimRequest) Params() strategy.Params {
	p := strategy.DefaultParams()
	if r.Days != nil {
		p.Days = *r.Days
	}
	if r.InitialPrice != nil {
		p.InitialPrice = *r.InitialPrice
	}
	if r.Volatility != nil {
		p.Volatility = *r.Volatility
	}
	if r.VRP != nil {
		p.VRP = *r.VRP
	}
	if r.Seed != nil {
		p.Seed = *r.Seed
	}
	return p
}

// TradeLimit picks the request's max_trades when given, else fallback.
func (r SimRequest) TradeLimit(fallback int) (int, error) {
	if r.MaxTrades == nil {
		return fallback, nil
	}
	if *r.MaxTrades < 0 {
		return 0, fmt.Errorf("max_trades must be >= 0")
	}
	if *r.MaxTrades == 0 {
		return fallback, nil
	}
	return *r.MaxTrades, nil
}

// ParseRequest is the body of POST /api/v1/parse: raw simulator output
// pasted by a user, summarized without running anything.
type ParseRequest struct {
	Output string `json:"output" binding:"required"`
	Leg    string `json:"leg,omitempty"`  // "", "short" or "long"
	Days   int    `json:"days,omitempty"` // horizon for per-day P&L
}
