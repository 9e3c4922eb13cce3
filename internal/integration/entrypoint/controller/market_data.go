package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finly/backend/internal/application/usecase/market"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/entrypoint/dto"
)

// MarketDataController handles market data endpoints.
type MarketDataController struct {
	cryptoUseCase   *market.GetCryptoQuoteUseCase
	stockUseCase    *market.GetStockQuoteUseCase
	goldUseCase     *market.GetGoldQuoteUseCase
	overviewUseCase *market.GetMarketOverviewUseCase
}

// NewMarketDataController creates a new market data controller instance.
func NewMarketDataController(
	cryptoUseCase *market.GetCryptoQuoteUseCase,
	stockUseCase *market.GetStockQuoteUseCase,
	goldUseCase *market.GetGoldQuoteUseCase,
	overviewUseCase *market.GetMarketOverviewUseCase,
) *MarketDataController {
	return &MarketDataController{
		cryptoUseCase:   cryptoUseCase,
		stockUseCase:    stockUseCase,
		goldUseCase:     goldUseCase,
		overviewUseCase: overviewUseCase,
	}
}

// Crypto handles GET /market-data/crypto/:symbol requests.
func (c *MarketDataController) Crypto(ctx *gin.Context) {
	output, err := c.cryptoUseCase.Execute(ctx.Request.Context(), market.GetCryptoQuoteInput{
		Symbol: ctx.Param("symbol"),
	})
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Quote)
}

// Stock handles GET /market-data/stock/:symbol requests.
func (c *MarketDataController) Stock(ctx *gin.Context) {
	output, err := c.stockUseCase.Execute(ctx.Request.Context(), market.GetStockQuoteInput{
		Symbol: ctx.Param("symbol"),
	})
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Quote)
}

// Gold handles GET /market-data/gold requests.
func (c *MarketDataController) Gold(ctx *gin.Context) {
	output, err := c.goldUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Quote)
}

// Overview handles GET /market-data/all requests.
func (c *MarketDataController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketOverviewResponse(output.Quotes, output.Timestamp))
}

// Summary handles GET /market-data requests.
func (c *MarketDataController) Summary(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketSummaryResponse(output.Quotes, output.Timestamp))
}

// handleMarketError maps market data errors to HTTP responses.
func (c *MarketDataController) handleMarketError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrQuoteNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Quote not available for the requested symbol",
		})
	case errors.Is(err, domainerror.ErrMarketUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Market data source unavailable",
		})
	default:
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Failed to fetch market data",
		})
	}
}
