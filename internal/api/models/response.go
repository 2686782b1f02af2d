package models

// TradeEntry is one trade line as the UI renders it.
type TradeEntry struct {
	TradeType string   `json:"trade_type"` // "open", "close", "hold"
	Message   string   `json:"message"`
	Source    string   `json:"source,omitempty"` // "short" or "long" on combined runs
	Day       int      `json:"day"`
	PnL       *float64 `json:"pnl,omitempty"`
}

// SimResponse is the result of a single-leg run, and the base of a combined one.
type SimResponse struct {
	ID            string       `json:"id,omitempty"`
	Strategy      string       `json:"strategy,omitempty"`
	NetPnL        float64      `json:"net_pnl"`
	PositionCount int          `json:"position_count"`
	WinRate       float64      `json:"win_rate"`
	FinalPrice    float64      `json:"final_price"`
	Trades        []TradeEntry `json:"trades"`
	Degraded      bool         `json:"degraded,omitempty"`
}

// CombinedResponse adds the per-leg breakdown for the combined preset.
type CombinedResponse struct {
	SimResponse
	ShortPnL       float64 `json:"short_pnl"`
	LongPnL        float64 `json:"long_pnl"`
	TotalPnL       float64 `json:"total_pnl"`
	ShortPnLPerDay float64 `json:"short_pnl_per_day"`
	LongPnLPerDay  float64 `json:"long_pnl_per_day"`
	TotalPnLPerDay float64 `json:"total_pnl_per_day"`
	ShortPositions int     `json:"short_positions"`
	LongPositions  int     `json:"long_positions"`
	ShortWinRate   float64 `json:"short_win_rate"`
	LongWinRate    float64 `json:"long_win_rate"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Legs        []string        `json:"legs"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidStrategy = "INVALID_STRATEGY"
	CodeInvalidConfig   = "INVALID_CONFIG"
	CodeInternal        = "INTERNAL_ERROR"
)

// NewError builds an ErrorResponse with no details.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
