package handlers

import (
	"errors"
	"io"
	"net/http"

	"straddle-backtest/internal/api/middleware"
	"straddle-backtest/internal/api/models"
	"straddle-backtest/internal/backtest"
	"straddle-backtest/internal/model"
	"straddle-backtest/internal/strategy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SimulationHandler handles simulator runs and pasted-output parsing
type SimulationHandler struct {
	engine    *backtest.Engine
	maxTrades int
	log       *zap.Logger
}

// NewSimulationHandler creates a new simulation handler. maxTrades caps the
// trades returned per response when the request does not set its own (0 = all).
func NewSimulationHandler(engine *backtest.Engine, maxTrades int, log *zap.Logger) *SimulationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SimulationHandler{engine: engine, maxTrades: maxTrades, log: log}
}

// Run handles POST /run and POST /api/v1/run
func (h *SimulationHandler) Run(c *gin.Context) {
	var req models.SimRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}

	strat, err := strategy.Lookup(req.StrategyName())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidStrategy, err.Error()))
		return
	}

	params := req.Params()
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidConfig, err.Error()))
		return
	}

	limit, err := req.TradeLimit(h.maxTrades)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}

	h.log.Info("running simulation",
		zap.String("strategy", strat.Name()),
		zap.Int("days", params.Days),
		zap.Uint64("seed", params.Seed),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	)

	result, err := h.engine.Run(c.Request.Context(), strat, params, backtest.Options{MaxTrades: limit})
	if err != nil {
		h.log.Error("simulation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.NewError(models.CodeInternal, err.Error()))
		return
	}

	if result.Combined != nil {
		c.JSON(http.StatusOK, buildCombinedResponse(result))
		return
	}
	c.JSON(http.StatusOK, buildResponse(result))
}

// Parse handles POST /api/v1/parse
func (h *SimulationHandler) Parse(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, err.Error()))
		return
	}

	leg, ok := model.ParseLeg(req.Leg)
	if !ok {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, "leg must be \"short\", \"long\" or empty"))
		return
	}
	if req.Days < 0 {
		c.JSON(http.StatusBadRequest, models.NewError(models.CodeInvalidRequest, "days must be >= 0"))
		return
	}

	res := backtest.ParseOutput(req.Output, leg, req.Days)
	trades := res.Trades
	if h.maxTrades > 0 && len(trades) > h.maxTrades {
		trades = trades[:h.maxTrades]
	}

	c.JSON(http.StatusOK, models.SimResponse{
		NetPnL:        res.NetPnL.InexactFloat64(),
		PositionCount: res.PositionCount,
		WinRate:       res.WinRate,
		FinalPrice:    res.FinalPrice.InexactFloat64(),
		Trades:        convertTrades(trades),
	})
}

func buildResponse(result *backtest.Result) models.SimResponse {
	return models.SimResponse{
		ID:            result.ID,
		Strategy:      result.Strategy,
		NetPnL:        result.NetPnL().InexactFloat64(),
		PositionCount: result.PositionCount(),
		WinRate:       result.WinRate(),
		FinalPrice:    result.FinalPrice().InexactFloat64(),
		Trades:        convertTrades(result.Trades),
		Degraded:      result.Degraded,
	}
}

func buildCombinedResponse(result *backtest.Result) models.CombinedResponse {
	m := result.Combined
	return models.CombinedResponse{
		SimResponse:    buildResponse(result),
		ShortPnL:       m.ShortPnL.InexactFloat64(),
		LongPnL:        m.LongPnL.InexactFloat64(),
		TotalPnL:       m.TotalPnL.InexactFloat64(),
		ShortPnLPerDay: m.ShortPnLPerDay.InexactFloat64(),
		LongPnLPerDay:  m.LongPnLPerDay.InexactFloat64(),
		TotalPnLPerDay: m.TotalPnLPerDay.InexactFloat64(),
		ShortPositions: m.ShortPositions,
		LongPositions:  m.LongPositions,
		ShortWinRate:   m.ShortWinRate,
		LongWinRate:    m.LongWinRate,
	}
}

func convertTrades(trades []model.TradeEvent) []models.TradeEntry {
	out := make([]models.TradeEntry, len(trades))
	for i, t := range trades {
		out[i] = models.TradeEntry{
			TradeType: string(t.Kind),
			Message:   t.RawText,
			Source:    string(t.SourceLeg),
			Day:       t.DayIndex,
		}
		if t.PnL.Valid {
			v := t.PnL.Decimal.InexactFloat64()
			out[i].PnL = &v
		}
	}
	return out
}
