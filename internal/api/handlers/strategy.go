package handlers

import (
	"net/http"

	"straddle-backtest/internal/api/models"
	"straddle-backtest/internal/strategy"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct {
	strategies []models.StrategyInfo
}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	defaults := strategy.DefaultParams()
	params := []models.ParameterInfo{
		{Name: "days", Type: "int", Description: "Trading days to simulate", Default: defaults.Days},
		{Name: "initial_price", Type: "float", Description: "Starting underlying price", Default: defaults.InitialPrice},
		{Name: "volatility", Type: "float", Description: "Annualized realized volatility (0.30 = 30%)", Default: defaults.Volatility},
		{Name: "vrp", Type: "float", Description: "Volatility risk premium added to implied volatility", Default: defaults.VRP},
		{Name: "seed", Type: "int", Description: "Random seed for the price path", Default: defaults.Seed},
	}

	var infos []models.StrategyInfo
	for _, s := range strategy.All() {
		info := models.StrategyInfo{
			Name:        s.Name(),
			Description: s.Description(),
			Parameters:  params,
		}
		for _, leg := range s.Legs(defaults) {
			info.Legs = append(info.Legs, leg.Config.Strategy.Side)
		}
		infos = append(infos, info)
	}
	return &StrategyHandler{strategies: infos}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": h.strategies})
}
